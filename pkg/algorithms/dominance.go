package algorithms

import (
	"github.com/mihai-snyk/ibmols/pkg/framework"
)

// Dominance is the three-way outcome of comparing two objective vectors.
type Dominance int

const (
	// Incomparable means neither vector dominates the other.
	Incomparable Dominance = iota
	// LeftDominates means the first vector is at least as good everywhere
	// and strictly better somewhere.
	LeftDominates
	// RightDominates is the mirror of LeftDominates.
	RightDominates
	// Equal means the vectors are identical on every objective.
	Equal
)

// Compare ranks two objective vectors under a single maximization
// convention: profit totals, so higher is better on every objective. The
// same convention is used everywhere in the package — dominance checks,
// archive filtering and the epsilon indicator all agree on it.
func Compare(a, b []float64) Dominance {
	leftBetter := false
	rightBetter := false
	for k := range a {
		if a[k] > b[k] {
			leftBetter = true
		} else if b[k] > a[k] {
			rightBetter = true
		}
	}
	switch {
	case leftBetter && rightBetter:
		return Incomparable
	case leftBetter:
		return LeftDominates
	case rightBetter:
		return RightDominates
	default:
		return Equal
	}
}

// Dominates reports whether a Pareto-dominates b: no worse on every
// objective and strictly better on at least one.
func Dominates(a, b *framework.Individual) bool {
	return Compare(a.Objectives, b.Objectives) == LeftDominates
}
