package algorithms

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/ibmols/pkg/framework"
)

// WeightCycler walks a weight-vector table round-robin. Each generation
// consumes one row; after the last row the cursor wraps back to row 0. The
// active vector only influences scalarization — no other part of the search
// depends on which row is current.
type WeightCycler struct {
	table [][]float64
	next  int
}

// NewWeightCycler validates the table shape: non-empty, every row of length
// numObjectives.
func NewWeightCycler(table [][]float64, numObjectives int) (*WeightCycler, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: weight table must not be empty", framework.ErrInvalidParameter)
	}
	for i, row := range table {
		if len(row) != numObjectives {
			return nil, fmt.Errorf("%w: weight row %d has %d entries, want %d",
				framework.ErrInvalidParameter, i, len(row), numObjectives)
		}
	}
	return &WeightCycler{table: table}, nil
}

// Next returns the row at the cursor and advances it, wrapping after the
// last row.
func (c *WeightCycler) Next() []float64 {
	row := c.table[c.next]
	c.next++
	if c.next == len(c.table) {
		c.next = 0
	}
	return row
}

// Reset rewinds the cursor to row 0.
func (c *WeightCycler) Reset() {
	c.next = 0
}

// Len returns the number of rows in the table.
func (c *WeightCycler) Len() int {
	return len(c.table)
}

// scalarize sets x.Scalarized to the element-wise product of the objective
// totals and the active weight vector.
func scalarize(x *framework.Individual, weights []float64) {
	floats.MulTo(x.Scalarized, x.Objectives, weights)
}
