package framework

import (
	"golang.org/x/exp/rand"
)

// Individual is a candidate solution together with its cached evaluation.
// Order is the authoritative representation: it is a permutation of item
// indices that drives the greedy pack in Evaluate. Included, Objectives,
// CapacityUsed and the counts are derived state and are only valid
// immediately after an Evaluate call (or an explicitly paired
// Snapshot/Restore transaction during local search).
type Individual struct {
	Order    []int
	Included []bool

	Objectives   []float64
	CapacityUsed []float64
	Scalarized   []float64

	Fitness  float64
	Explored bool

	IncludedCount int
	ExcludedCount int
}

// NewIndividual allocates an individual for p with an identity Order and
// empty evaluation state.
func NewIndividual(p *Problem) *Individual {
	x := &Individual{
		Order:        make([]int, p.NumItems),
		Included:     make([]bool, p.NumItems),
		Objectives:   make([]float64, p.NumObjectives),
		CapacityUsed: make([]float64, p.NumObjectives),
		Scalarized:   make([]float64, p.NumObjectives),
		Fitness:      -1.0,
	}
	for i := range x.Order {
		x.Order[i] = i
	}
	return x
}

// RandomIndividual creates an individual with a random item permutation and
// evaluates it. Deterministic for a fixed rng state.
func RandomIndividual(p *Problem, rng *rand.Rand) *Individual {
	x := NewIndividual(p)
	copy(x.Order, rng.Perm(p.NumItems))
	Evaluate(p, x)
	return x
}

// Clone returns a fully independent deep copy. The clone shares no backing
// storage with the original.
func (x *Individual) Clone() *Individual {
	c := &Individual{
		Order:         make([]int, len(x.Order)),
		Included:      make([]bool, len(x.Included)),
		Objectives:    make([]float64, len(x.Objectives)),
		CapacityUsed:  make([]float64, len(x.CapacityUsed)),
		Scalarized:    make([]float64, len(x.Scalarized)),
		Fitness:       x.Fitness,
		Explored:      x.Explored,
		IncludedCount: x.IncludedCount,
		ExcludedCount: x.ExcludedCount,
	}
	copy(c.Order, x.Order)
	copy(c.Included, x.Included)
	copy(c.Objectives, x.Objectives)
	copy(c.CapacityUsed, x.CapacityUsed)
	copy(c.Scalarized, x.Scalarized)
	return c
}

// View copies the individual into an independent Solution.
func (x *Individual) View() Solution {
	s := Solution{
		Order:        make([]int, len(x.Order)),
		Included:     make([]bool, len(x.Included)),
		Objectives:   make([]float64, len(x.Objectives)),
		CapacityUsed: make([]float64, len(x.CapacityUsed)),
	}
	copy(s.Order, x.Order)
	copy(s.Included, x.Included)
	copy(s.Objectives, x.Objectives)
	copy(s.CapacityUsed, x.CapacityUsed)
	return s
}

// Snapshot holds a copy of an individual's mutable evaluation state so a
// trial mutation can be applied and then either committed or rolled back
// atomically. The buffers are reusable across steps; Capture overwrites them.
type Snapshot struct {
	included      []bool
	objectives    []float64
	capacityUsed  []float64
	scalarized    []float64
	includedCount int
	excludedCount int
}

// NewSnapshot allocates snapshot buffers sized for p.
func NewSnapshot(p *Problem) *Snapshot {
	return &Snapshot{
		included:     make([]bool, p.NumItems),
		objectives:   make([]float64, p.NumObjectives),
		capacityUsed: make([]float64, p.NumObjectives),
		scalarized:   make([]float64, p.NumObjectives),
	}
}

// Capture records x's current evaluation state.
func (s *Snapshot) Capture(x *Individual) {
	copy(s.included, x.Included)
	copy(s.objectives, x.Objectives)
	copy(s.capacityUsed, x.CapacityUsed)
	copy(s.scalarized, x.Scalarized)
	s.includedCount = x.IncludedCount
	s.excludedCount = x.ExcludedCount
}

// Restore rolls x back to the captured state. No partial trial state
// survives the rollback.
func (s *Snapshot) Restore(x *Individual) {
	copy(x.Included, s.included)
	copy(x.Objectives, s.objectives)
	copy(x.CapacityUsed, s.capacityUsed)
	copy(x.Scalarized, s.scalarized)
	x.IncludedCount = s.includedCount
	x.ExcludedCount = s.excludedCount
}
