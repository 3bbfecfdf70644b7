package algorithms

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/ibmols/pkg/framework"
)

// epsilonIndicator returns the additive epsilon indicator between the
// scalarized vectors of y and x: the minimal uniform shift that, added to
// every component of x, makes x at least as good as y on every scalarized
// objective. Negative when x already covers y. The value is normalized by
// maxBound, the largest scalarized component in the working population, so
// kappa keeps the same meaning across weight vectors and instances.
func epsilonIndicator(y, x *framework.Individual, maxBound float64) float64 {
	if maxBound <= 0 {
		maxBound = 1
	}
	eps := y.Scalarized[0] - x.Scalarized[0]
	for k := 1; k < len(y.Scalarized); k++ {
		if d := y.Scalarized[k] - x.Scalarized[k]; d > eps {
			eps = d
		}
	}
	return eps / maxBound
}

// maxScalarizedBound returns the largest scalarized component across the
// population, the normalization bound for the indicator.
func maxScalarizedBound(pop []*framework.Individual) float64 {
	bound := floats.Max(pop[0].Scalarized)
	for _, x := range pop[1:] {
		if v := floats.Max(x.Scalarized); v > bound {
			bound = v
		}
	}
	return bound
}

// computeFitness accumulates x's steady-state fitness against pop:
// the sum over members y of exp(-I(y,x)/kappa). A member that would need a
// large shift to cover its peers collects only tiny contributions, so the
// numerically smallest fitness marks the most dominated, most crowded
// member — the eviction candidate.
func computeFitness(x *framework.Individual, pop []*framework.Individual, kappa, maxBound float64) {
	x.Fitness = 0
	for _, y := range pop {
		x.Fitness += math.Exp(-epsilonIndicator(y, x, maxBound) / kappa)
	}
}

// computeAllFitness seeds the fitness bookkeeping for a fresh working
// population. Each member is scored against the full population, including
// its own self term.
func computeAllFitness(pop []*framework.Individual, kappa, maxBound float64) {
	for _, x := range pop {
		computeFitness(x, pop, kappa, maxBound)
	}
}

// replaceWorst is the single steady-state acceptance gate. It scores the
// candidate against pop, locates the minimum-fitness member, and if the
// candidate scores strictly higher it replaces that member with a clone of
// the candidate and returns the replaced slot index. Otherwise it returns -1
// and pop is left untouched.
//
// On acceptance the bookkeeping is updated incrementally rather than by a
// full O(n^2) recomputation: every surviving member loses the evicted
// member's contribution and gains the candidate's, and the candidate itself
// swaps the evicted member's contribution for its own self term.
func replaceWorst(pop []*framework.Individual, x *framework.Individual, kappa, maxBound float64) int {
	computeFitness(x, pop, kappa, maxBound)

	worst := 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Fitness < pop[worst].Fitness {
			worst = i
		}
	}
	if x.Fitness <= pop[worst].Fitness {
		return -1
	}

	evicted := pop[worst]
	for i, m := range pop {
		if i == worst {
			continue
		}
		m.Fitness += math.Exp(-epsilonIndicator(x, m, maxBound)/kappa) -
			math.Exp(-epsilonIndicator(evicted, m, maxBound)/kappa)
	}
	x.Fitness += math.Exp(-epsilonIndicator(x, x, maxBound)/kappa) -
		math.Exp(-epsilonIndicator(evicted, x, maxBound)/kappa)

	pop[worst] = x.Clone()
	return worst
}
