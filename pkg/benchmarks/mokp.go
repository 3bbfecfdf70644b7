// Package benchmarks generates random multi-objective knapsack instances
// and weight-vector tables for tests, examples and the CLI's random mode.
package benchmarks

import (
	"golang.org/x/exp/rand"

	"github.com/mihai-snyk/ibmols/pkg/framework"
)

const (
	minCoefficient = 10
	maxCoefficient = 100
)

// RandomMOKP builds an instance in the style of the classic knapsack test
// suites: integer weights and profits drawn uniformly from [10,100], with
// each objective's capacity set to half of that objective's total weight, so
// roughly half the items fit and the constraints actually bind.
func RandomMOKP(numObjectives, numItems int, rng *rand.Rand) *framework.Problem {
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
		total := 0.0
		for i := 0; i < numItems; i++ {
			w := float64(minCoefficient + rng.Intn(maxCoefficient-minCoefficient+1))
			p.Weights[f][i] = w
			p.Profits[f][i] = float64(minCoefficient + rng.Intn(maxCoefficient-minCoefficient+1))
			total += w
		}
		p.Capacities[f] = total / 2
	}
	return p
}

// UniformWeightTable builds rows random scalarization vectors, each
// normalized to sum to one.
func UniformWeightTable(rows, numObjectives int, rng *rand.Rand) [][]float64 {
	table := make([][]float64, rows)
	for r := range table {
		row := make([]float64, numObjectives)
		sum := 0.0
		for k := range row {
			row[k] = rng.Float64()
			sum += row[k]
		}
		if sum == 0 {
			sum = 1
		}
		for k := range row {
			row[k] /= sum
		}
		table[r] = row
	}
	return table
}
