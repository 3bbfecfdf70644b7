// Package loader reads knapsack problem and weight-vector files and writes
// result fronts. It is a thin collaborator around the search core: parsing
// only, no search logic.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/mihai-snyk/ibmols/pkg/framework"
)

// ErrNotFound is returned when an input file does not exist.
var ErrNotFound = errors.New("loader: file not found")

// ErrParse is returned when an input file does not match the expected
// format.
var ErrParse = errors.New("loader: parse error")

// LoadProblem reads the whitespace-token problem format: the number of
// objectives and items, then for every objective its capacity followed by,
// per item, an item label, the item's weight and the item's profit. The
// returned problem has already passed Validate.
func LoadProblem(path string) (*framework.Problem, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	sc.Split(bufio.ScanWords)

	numObjectives, err := nextInt(sc, "objective count")
	if err != nil {
		return nil, err
	}
	numItems, err := nextInt(sc, "item count")
	if err != nil {
		return nil, err
	}
	if numObjectives <= 0 || numObjectives > framework.MaxObjectives ||
		numItems <= 0 || numItems > framework.MaxItems {
		return nil, fmt.Errorf("%w: implausible header %d objectives, %d items",
			ErrParse, numObjectives, numItems)
	}

	p := &framework.Problem{
		NumObjectives: numObjectives,
		NumItems:      numItems,
		Capacities:    make([]float64, numObjectives),
		Weights:       make([][]float64, numObjectives),
		Profits:       make([][]float64, numObjectives),
	}
	for f := 0; f < numObjectives; f++ {
		p.Weights[f] = make([]float64, numItems)
		p.Profits[f] = make([]float64, numItems)

		if p.Capacities[f], err = nextFloat(sc, "capacity"); err != nil {
			return nil, err
		}
		for i := 0; i < numItems; i++ {
			// Item label, kept only for readability of the files.
			if _, err = nextToken(sc, "item label"); err != nil {
				return nil, err
			}
			if p.Weights[f][i], err = nextFloat(sc, "item weight"); err != nil {
				return nil, err
			}
			if p.Profits[f][i], err = nextFloat(sc, "item profit"); err != nil {
				return nil, err
			}
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadWeights reads a weight-vector table: numObjectives floats per row
// until end of file. The table must be non-empty and rectangular.
func LoadWeights(path string, numObjectives int) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	sc.Split(bufio.ScanWords)

	var values []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad weight value %q", ErrParse, sc.Text())
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: weight table is empty", ErrParse)
	}
	if len(values)%numObjectives != 0 {
		return nil, fmt.Errorf("%w: %d weight values do not fill rows of %d",
			ErrParse, len(values), numObjectives)
	}

	table := make([][]float64, 0, len(values)/numObjectives)
	for i := 0; i < len(values); i += numObjectives {
		table = append(table, values[i:i+numObjectives])
	}
	return table, nil
}

// WriteFront writes one line of objective totals per solution.
func WriteFront(path string, front []framework.Solution) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	for _, s := range front {
		for _, v := range s.Objectives {
			fmt.Fprintf(w, "%f ", v)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func nextToken(sc *bufio.Scanner, what string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of file reading %s", ErrParse, what)
	}
	return sc.Text(), nil
}

func nextInt(sc *bufio.Scanner, what string) (int, error) {
	tok, err := nextToken(sc, what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s %q", ErrParse, what, tok)
	}
	return v, nil
}

func nextFloat(sc *bufio.Scanner, what string) (float64, error) {
	tok, err := nextToken(sc, what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s %q", ErrParse, what, tok)
	}
	return v, nil
}
