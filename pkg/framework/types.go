package framework

import (
	"errors"
	"fmt"
)

const (
	// MinObjectives and MaxObjectives bound the number of knapsack
	// objectives a Problem may carry.
	MinObjectives = 2
	MaxObjectives = 4

	// MaxItems caps the instance size so that a malformed input cannot
	// request unbounded per-individual allocations.
	MaxItems = 100000
)

// ErrInvalidParameter is returned for configuration or instance data that is
// rejected before any search state is created.
var ErrInvalidParameter = errors.New("ibmols: invalid parameter")

// ErrResourceExhausted is returned when a request would exceed the supported
// allocation limits. The in-progress call is aborted; callers may retry with
// smaller parameters.
var ErrResourceExhausted = errors.New("ibmols: resource exhausted")

// Problem holds an immutable 0/1 multi-objective knapsack instance.
// Weights and Profits are indexed [objective][item]. A Problem is shared by
// pointer across every individual and evaluation; it is never copied and
// never mutated after Validate has accepted it.
type Problem struct {
	NumObjectives int
	NumItems      int
	Capacities    []float64
	Weights       [][]float64
	Profits       [][]float64
}

// Validate checks the instance shape before it is handed to a search.
func (p *Problem) Validate() error {
	if p.NumObjectives < MinObjectives || p.NumObjectives > MaxObjectives {
		return fmt.Errorf("%w: number of objectives must be in [%d,%d], got %d",
			ErrInvalidParameter, MinObjectives, MaxObjectives, p.NumObjectives)
	}
	if p.NumItems <= 0 {
		return fmt.Errorf("%w: number of items must be positive, got %d",
			ErrInvalidParameter, p.NumItems)
	}
	if p.NumItems > MaxItems {
		return fmt.Errorf("%w: %d items exceeds the supported maximum of %d",
			ErrResourceExhausted, p.NumItems, MaxItems)
	}
	if len(p.Capacities) != p.NumObjectives {
		return fmt.Errorf("%w: expected %d capacities, got %d",
			ErrInvalidParameter, p.NumObjectives, len(p.Capacities))
	}
	if len(p.Weights) != p.NumObjectives || len(p.Profits) != p.NumObjectives {
		return fmt.Errorf("%w: weight and profit matrices must have one row per objective",
			ErrInvalidParameter)
	}
	for f := 0; f < p.NumObjectives; f++ {
		if len(p.Weights[f]) != p.NumItems || len(p.Profits[f]) != p.NumItems {
			return fmt.Errorf("%w: objective %d weight/profit rows must have %d entries",
				ErrInvalidParameter, f, p.NumItems)
		}
	}
	return nil
}

// Solution is a read-only view of a search result. Order is the permutation
// that produced the pack, so a caller can re-run Evaluate independently and
// verify Objectives and CapacityUsed.
type Solution struct {
	Order        []int
	Included     []bool
	Objectives   []float64
	CapacityUsed []float64
}
