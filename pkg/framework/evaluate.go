package framework

// Evaluate recomputes Included, Objectives, CapacityUsed and the counts of x
// from scratch by walking Order and greedily packing every item that still
// fits all capacity constraints. The pack is first-fit and driven entirely by
// iteration order: two individuals with the same Included vector but
// different Order are not guaranteed to re-evaluate to the same totals, so
// Order stays authoritative throughout the search.
//
// After Evaluate returns, CapacityUsed[f] <= p.Capacities[f] holds for every
// objective f.
func Evaluate(p *Problem, x *Individual) {
	x.IncludedCount = 0
	x.ExcludedCount = 0
	for f := 0; f < p.NumObjectives; f++ {
		x.CapacityUsed[f] = 0
		x.Objectives[f] = 0
	}
	for i := range x.Included {
		x.Included[i] = false
	}

	for _, item := range x.Order {
		feasible := true
		for f := 0; f < p.NumObjectives; f++ {
			if x.CapacityUsed[f]+p.Weights[f][item] > p.Capacities[f] {
				feasible = false
				break
			}
		}
		if !feasible {
			x.ExcludedCount++
			continue
		}
		for f := 0; f < p.NumObjectives; f++ {
			x.CapacityUsed[f] += p.Weights[f][item]
			x.Objectives[f] += p.Profits[f][item]
		}
		x.Included[item] = true
		x.IncludedCount++
	}
}

// EvaluateSubset totals an arbitrary inclusion vector without applying any
// feasibility filtering. Callers pair it with IsFeasible when they need to
// inspect externally supplied selections.
func EvaluateSubset(p *Problem, included []bool) Solution {
	s := Solution{
		Included:     make([]bool, p.NumItems),
		Objectives:   make([]float64, p.NumObjectives),
		CapacityUsed: make([]float64, p.NumObjectives),
	}
	copy(s.Included, included)
	for item := 0; item < p.NumItems && item < len(included); item++ {
		if !included[item] {
			continue
		}
		for f := 0; f < p.NumObjectives; f++ {
			s.Objectives[f] += p.Profits[f][item]
			s.CapacityUsed[f] += p.Weights[f][item]
		}
	}
	return s
}

// IsFeasible reports whether the selection satisfies every capacity
// constraint simultaneously.
func IsFeasible(p *Problem, included []bool) bool {
	for f := 0; f < p.NumObjectives; f++ {
		total := 0.0
		for item := 0; item < p.NumItems && item < len(included); item++ {
			if included[item] {
				total += p.Weights[f][item]
			}
		}
		if total > p.Capacities[f] {
			return false
		}
	}
	return true
}
