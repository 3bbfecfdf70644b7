package loader_test

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mihai-snyk/ibmols/pkg/framework"
	"github.com/mihai-snyk/ibmols/pkg/loader"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProblem(t *testing.T) {
	path := writeFile(t, "instance.txt", `2 3
50
item1 10 60
item2 20 100
item3 30 120
60
item1 12 50
item2 18 90
item3 25 110
`)
	p, err := loader.LoadProblem(path)
	if err != nil {
		t.Fatalf("LoadProblem: %v", err)
	}

	want := &framework.Problem{
		NumObjectives: 2,
		NumItems:      3,
		Capacities:    []float64{50, 60},
		Weights: [][]float64{
			{10, 20, 30},
			{12, 18, 25},
		},
		Profits: [][]float64{
			{60, 100, 120},
			{50, 90, 110},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Problem mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProblemMissingFile(t *testing.T) {
	_, err := loader.LoadProblem(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, loader.ErrNotFound) {
		t.Errorf("LoadProblem = %v, want ErrNotFound", err)
	}
}

func TestLoadProblemParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "bad objective count", content: "x 3\n"},
		{name: "implausible header", content: "9 3\n"},
		{name: "zero items", content: "2 0\n"},
		{name: "truncated after capacity", content: "2 2\n50\nitem1 10\n"},
		{name: "non numeric weight", content: "2 1\n50\nitem1 ten 60\n60\nitem1 12 50\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.txt", tt.content)
			if _, err := loader.LoadProblem(path); !errors.Is(err, loader.ErrParse) {
				t.Errorf("LoadProblem = %v, want ErrParse", err)
			}
		})
	}
}

func TestLoadWeights(t *testing.T) {
	path := writeFile(t, "weights.txt", "0.7 0.3\n0.5 0.5\n0.3 0.7\n")
	table, err := loader.LoadWeights(path, 2)
	if err != nil {
		t.Fatalf("LoadWeights: %v", err)
	}
	want := [][]float64{{0.7, 0.3}, {0.5, 0.5}, {0.3, 0.7}}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("Table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadWeightsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadWeights(filepath.Join(t.TempDir(), "nope.txt"), 2)
		if !errors.Is(err, loader.ErrNotFound) {
			t.Errorf("LoadWeights = %v, want ErrNotFound", err)
		}
	})
	t.Run("empty table", func(t *testing.T) {
		path := writeFile(t, "weights.txt", "")
		if _, err := loader.LoadWeights(path, 2); !errors.Is(err, loader.ErrParse) {
			t.Errorf("LoadWeights = %v, want ErrParse", err)
		}
	})
	t.Run("ragged table", func(t *testing.T) {
		path := writeFile(t, "weights.txt", "0.5 0.5 0.2\n")
		if _, err := loader.LoadWeights(path, 2); !errors.Is(err, loader.ErrParse) {
			t.Errorf("LoadWeights = %v, want ErrParse", err)
		}
	})
	t.Run("non numeric value", func(t *testing.T) {
		path := writeFile(t, "weights.txt", "0.5 half\n")
		if _, err := loader.LoadWeights(path, 2); !errors.Is(err, loader.ErrParse) {
			t.Errorf("LoadWeights = %v, want ErrParse", err)
		}
	})
}

func TestWriteFront(t *testing.T) {
	front := []framework.Solution{
		{Objectives: []float64{14, 22}},
		{Objectives: []float64{13, 19}},
	}
	path := filepath.Join(t.TempDir(), "front.txt")
	if err := loader.WriteFront(path, front); err != nil {
		t.Fatalf("WriteFront: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines++
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if lines != len(front) {
		t.Errorf("Front file has %d lines, want %d", lines, len(front))
	}
}
