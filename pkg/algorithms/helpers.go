package algorithms

import (
	"github.com/mihai-snyk/ibmols/pkg/framework"
)

// ParetoFront extracts independent views of every archived solution.
func ParetoFront(archive *Archive) []framework.Solution {
	if archive == nil || archive.Size() == 0 {
		return nil
	}
	front := make([]framework.Solution, archive.Size())
	for i := range front {
		front[i] = archive.SolutionAt(i)
	}
	return front
}

// ObjectiveRanges returns the per-objective minimum and maximum totals over
// a front, a compact summary for reporting the spread of the archive.
func ObjectiveRanges(front []framework.Solution) (mins, maxs []float64) {
	if len(front) == 0 {
		return nil, nil
	}
	n := len(front[0].Objectives)
	mins = make([]float64, n)
	maxs = make([]float64, n)
	copy(mins, front[0].Objectives)
	copy(maxs, front[0].Objectives)
	for _, s := range front[1:] {
		for k, v := range s.Objectives {
			if v < mins[k] {
				mins[k] = v
			}
			if v > maxs[k] {
				maxs[k] = v
			}
		}
	}
	return mins, maxs
}
