package algorithms

import (
	"github.com/mihai-snyk/ibmols/pkg/framework"
)

// localSearch sweeps every unexplored member of the working population with
// the remove/insert/accept-or-rollback operator, folding the population into
// scratch after each member, and repeats full passes until a fold reports
// zero new survivors. scratch is the generation-local archive; it collects
// everything the sweep discovers and the caller folds it into the persistent
// archive afterwards.
//
// Each trial step is a scoped transaction on the trial clone: the evaluation
// state is captured before the removal, and on rejection the whole step,
// the removed item plus every tentative insertion, is rolled back in one
// restore. Acceptance goes through replaceWorst, the same steady-state gate
// that seeded the population fitness.
func (e *IBMOLS) localSearch(pop []*framework.Individual, scratch *Archive, weights []float64) {
	snap := framework.NewSnapshot(e.problem)
	attempted := make([]int, 0, e.cfg.LocalSearchDepth)

	scratch.Fold(pop)

	for {
		converged := 0
		for i := 0; i < len(pop); i++ {
			if !pop[i].Explored {
				trial := pop[i].Clone()
				steps := trial.IncludedCount
				accepted := false

				for j := 0; j < steps; j++ {
					if trial.IncludedCount == 0 {
						break
					}
					snap.Capture(trial)

					removed := e.randomIncluded(trial)
					e.removeItem(trial, removed)

					// Try up to LocalSearchDepth random excluded items.
					// Each candidate gets one attempt per step: feasible
					// insertions are recorded and applied immediately, so
					// several items can stack into the freed capacity.
					attempted = attempted[:0]
					for im := 0; im < e.cfg.LocalSearchDepth; im++ {
						if trial.ExcludedCount == 0 {
							break
						}
						cand := e.randomExcluded(trial)
						if cand == removed {
							continue
						}
						if containsItem(attempted, cand) {
							continue
						}
						if !e.fits(trial, cand) {
							continue
						}
						attempted = append(attempted, cand)
						e.insertItem(trial, cand)
					}

					scalarize(trial, weights)
					bound := maxScalarizedBound(pop)
					slot := replaceWorst(pop, trial, e.cfg.Kappa, bound)
					if slot >= 0 {
						accepted = true
						// The accepted clone must not be swept again this
						// pass. If it landed ahead of the cursor, swap it to
						// the next slot and step over it, so every original
						// member is still visited exactly once.
						if slot > i {
							pop[i+1], pop[slot] = pop[slot], pop[i+1]
							i++
						}
						break
					}
					snap.Restore(trial)
				}

				if !accepted {
					pop[i].Explored = true
				}
			}
			converged = scratch.Fold(pop)
		}
		if converged == 0 {
			return
		}
	}
}

// randomIncluded picks a uniformly random currently-included item by
// rejection sampling. The caller guarantees IncludedCount > 0.
func (e *IBMOLS) randomIncluded(x *framework.Individual) int {
	for {
		item := e.rng.Intn(e.problem.NumItems)
		if x.Included[item] {
			return item
		}
	}
}

// randomExcluded picks a uniformly random currently-excluded item by
// rejection sampling. The caller guarantees ExcludedCount > 0; during a
// trial step at least one item is excluded because a removal always
// precedes the insertions.
func (e *IBMOLS) randomExcluded(x *framework.Individual) int {
	for {
		item := e.rng.Intn(e.problem.NumItems)
		if !x.Included[item] {
			return item
		}
	}
}

// fits reports whether adding item keeps every objective within capacity.
func (e *IBMOLS) fits(x *framework.Individual, item int) bool {
	for f := 0; f < e.problem.NumObjectives; f++ {
		if x.CapacityUsed[f]+e.problem.Weights[f][item] > e.problem.Capacities[f] {
			return false
		}
	}
	return true
}

// removeItem takes item out of the pack, updating totals and counts.
func (e *IBMOLS) removeItem(x *framework.Individual, item int) {
	x.Included[item] = false
	x.IncludedCount--
	x.ExcludedCount++
	for f := 0; f < e.problem.NumObjectives; f++ {
		x.CapacityUsed[f] -= e.problem.Weights[f][item]
		x.Objectives[f] -= e.problem.Profits[f][item]
	}
}

// insertItem adds item to the pack, updating totals and counts. The caller
// has already checked feasibility via fits.
func (e *IBMOLS) insertItem(x *framework.Individual, item int) {
	x.Included[item] = true
	x.IncludedCount++
	x.ExcludedCount--
	for f := 0; f < e.problem.NumObjectives; f++ {
		x.CapacityUsed[f] += e.problem.Weights[f][item]
		x.Objectives[f] += e.problem.Profits[f][item]
	}
}

func containsItem(items []int, item int) bool {
	for _, v := range items {
		if v == item {
			return true
		}
	}
	return false
}
