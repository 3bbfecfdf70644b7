package algorithms

import (
	"math"
	"testing"

	"github.com/mihai-snyk/ibmols/pkg/framework"
)

func scalarized(values ...float64) *framework.Individual {
	return &framework.Individual{Scalarized: values, Fitness: -1}
}

func TestEpsilonIndicator(t *testing.T) {
	tests := []struct {
		name     string
		y, x     []float64
		maxBound float64
		want     float64
	}{
		{
			name:     "shift needed on first objective",
			y:        []float64{4, 2},
			x:        []float64{3, 5},
			maxBound: 5,
			want:     0.2,
		},
		{
			name:     "covering point needs a negative shift",
			y:        []float64{1, 1},
			x:        []float64{3, 5},
			maxBound: 4,
			want:     -0.5,
		},
		{
			name:     "identical points need no shift",
			y:        []float64{2, 2},
			x:        []float64{2, 2},
			maxBound: 2,
			want:     0,
		},
		{
			name:     "non-positive bound falls back to 1",
			y:        []float64{3, 1},
			x:        []float64{1, 1},
			maxBound: 0,
			want:     2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := epsilonIndicator(scalarized(tt.y...), scalarized(tt.x...), tt.maxBound)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("epsilonIndicator = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestMaxScalarizedBound(t *testing.T) {
	pop := []*framework.Individual{
		scalarized(1, 7),
		scalarized(3, 2),
		scalarized(6, 5),
	}
	if got := maxScalarizedBound(pop); got != 7 {
		t.Errorf("maxScalarizedBound = %g, want 7", got)
	}
}

func TestFitnessRanksDominatedLowest(t *testing.T) {
	// (1,1) is dominated by both peers and must end up with the smallest
	// fitness, making it the eviction candidate.
	pop := []*framework.Individual{
		scalarized(5, 4),
		scalarized(4, 5),
		scalarized(1, 1),
	}
	bound := maxScalarizedBound(pop)
	computeAllFitness(pop, 0.05, bound)

	if pop[2].Fitness >= pop[0].Fitness || pop[2].Fitness >= pop[1].Fitness {
		t.Errorf("Dominated member fitness %g not below peers %g, %g",
			pop[2].Fitness, pop[0].Fitness, pop[1].Fitness)
	}
}

func TestReplaceWorstRejectsWeakCandidate(t *testing.T) {
	pop := []*framework.Individual{
		scalarized(5, 4),
		scalarized(4, 5),
	}
	bound := maxScalarizedBound(pop)
	computeAllFitness(pop, 0.05, bound)
	before := []float64{pop[0].Fitness, pop[1].Fitness}

	cand := scalarized(1, 1)
	if slot := replaceWorst(pop, cand, 0.05, bound); slot != -1 {
		t.Errorf("Expected rejection, candidate accepted into slot %d", slot)
	}
	for i, want := range before {
		if pop[i].Fitness != want {
			t.Errorf("pop[%d].Fitness changed on rejection: %g, want %g", i, pop[i].Fitness, want)
		}
	}
}

func TestReplaceWorstEvictsMinimumFitness(t *testing.T) {
	pop := []*framework.Individual{
		scalarized(5, 4),
		scalarized(1, 1),
		scalarized(4, 5),
	}
	bound := maxScalarizedBound(pop)
	computeAllFitness(pop, 0.05, bound)

	cand := scalarized(5, 5)
	slot := replaceWorst(pop, cand, 0.05, bound)
	if slot != 1 {
		t.Errorf("Expected the dominated member in slot 1 to be evicted, got slot %d", slot)
	}
	got := pop[1].Scalarized
	if got[0] != 5 || got[1] != 5 {
		t.Errorf("Slot 1 holds %v after acceptance, want the candidate [5 5]", got)
	}
}

func TestReplaceWorstIncrementalMatchesFullRecompute(t *testing.T) {
	const kappa = 0.05
	pop := []*framework.Individual{
		scalarized(5, 2),
		scalarized(2, 5),
		scalarized(3, 3),
		scalarized(1, 2),
	}
	bound := maxScalarizedBound(pop)
	computeAllFitness(pop, kappa, bound)

	cand := scalarized(4, 4)
	if slot := replaceWorst(pop, cand, kappa, bound); slot < 0 {
		t.Fatal("Expected the dominating candidate to be accepted")
	}

	// The incremental bookkeeping must agree with scoring the updated
	// population from scratch.
	incremental := make([]float64, len(pop))
	for i, m := range pop {
		incremental[i] = m.Fitness
	}
	computeAllFitness(pop, kappa, bound)
	for i, m := range pop {
		if math.Abs(incremental[i]-m.Fitness) > 1e-9 {
			t.Errorf("pop[%d] incremental fitness %g, full recompute %g",
				i, incremental[i], m.Fitness)
		}
	}
}
