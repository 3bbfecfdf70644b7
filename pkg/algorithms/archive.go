package algorithms

import (
	"github.com/mihai-snyk/ibmols/pkg/framework"
)

// Archive is a bounded container of pairwise non-dominated individuals: the
// Pareto front accumulated across generations. Members are always deep
// clones; the archive never aliases a working-population individual.
type Archive struct {
	capacity int
	members  []*framework.Individual
}

// NewArchive creates an empty archive that holds at most capacity members.
func NewArchive(capacity int) *Archive {
	return &Archive{capacity: capacity}
}

// Size returns the number of archived solutions.
func (a *Archive) Size() int {
	return len(a.members)
}

// Capacity returns the archive bound.
func (a *Archive) Capacity() int {
	return a.capacity
}

// SolutionAt returns an independent view of member i.
func (a *Archive) SolutionAt(i int) framework.Solution {
	return a.members[i].View()
}

// Fold rebuilds the archive from the union of the current members and deep
// clones of incoming, keeping exactly the non-dominated elements. Elements
// are scanned in original index order; an element is discarded as soon as
// any other element dominates it, and among elements with identical
// objective vectors only the lowest-index one survives. Survivors beyond the
// capacity bound are silently dropped, never reported as an error.
//
// The return value counts the survivors that originated in incoming; zero
// means the fold contributed nothing new and is the stagnation signal used
// by the search loop.
//
// Every call scans all pairs of the combined set: O(t^2) comparisons for
// t = len(members) + len(incoming). Fold runs once per generation and once
// per local-search sweep, so it is the dominant cost of the whole search for
// large archives. That quadratic rebuild is the contract, not an accident:
// the archive is reconstructed from scratch rather than patched, which is
// what keeps the non-domination invariant unconditional.
func (a *Archive) Fold(incoming []*framework.Individual) int {
	old := len(a.members)
	combined := make([]*framework.Individual, 0, old+len(incoming))
	combined = append(combined, a.members...)
	for _, x := range incoming {
		combined = append(combined, x.Clone())
	}

	next := make([]*framework.Individual, 0, min(len(combined), a.capacity))
	survivedNew := 0
	for i, x := range combined {
		dominated := false
		for j, y := range combined {
			if i == j {
				continue
			}
			switch Compare(x.Objectives, y.Objectives) {
			case RightDominates:
				dominated = true
			case Equal:
				if i > j {
					dominated = true
				}
			}
			if dominated {
				break
			}
		}
		if dominated {
			continue
		}
		if len(next) < a.capacity {
			next = append(next, x.Clone())
		}
		if i >= old {
			survivedNew++
		}
	}
	a.members = next
	return survivedNew
}
