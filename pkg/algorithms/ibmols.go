package algorithms

import (
	"fmt"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/ibmols/pkg/framework"
)

const (
	// Name identifies the algorithm.
	Name = "IBMOLS"

	// MaxArchiveCapacity caps the archive bound so a misconfigured caller
	// cannot request an unbounded allocation.
	MaxArchiveCapacity = 1 << 20
)

// Config holds the search parameters.
type Config struct {
	// PopulationSize is alpha, the working-population size sampled from the
	// archive each generation.
	PopulationSize int
	// MaxIterations is the generation budget. Zero runs no generations: the
	// returned archive holds only the folded initial random population.
	MaxIterations int
	// PerturbationRate is the per-position probability of swapping an
	// archive clone's item order during sampling, diversifying restarts
	// without touching archive members. Zero reproduces plain cloning.
	PerturbationRate float64
	// Kappa scales the exponential fitness kernel.
	Kappa float64
	// LocalSearchDepth bounds the insertion attempts per removal step.
	LocalSearchDepth int
	// ArchiveCapacity bounds the Pareto archive; survivors beyond it are
	// silently dropped.
	ArchiveCapacity int
	// Seed makes the search deterministic. Run reseeds its generator on
	// every call, so repeated runs of the same engine are identical.
	Seed uint64
	// OnGeneration, when non-nil, is invoked at every generation boundary.
	// Returning false stops the search early; the archive is valid at every
	// boundary.
	OnGeneration func(GenerationStats) bool
}

// GenerationStats is the per-generation report passed to OnGeneration.
type GenerationStats struct {
	Generation   int
	ArchiveSize  int
	NewSurvivors int
	WeightVector []float64
}

// DefaultConfig returns the standard parameterization of the search.
func DefaultConfig() Config {
	return Config{
		PopulationSize:   10,
		MaxIterations:    100,
		PerturbationRate: 0.05,
		Kappa:            0.05,
		LocalSearchDepth: 5,
		ArchiveCapacity:  28000,
		Seed:             1,
	}
}

// Validate rejects bad parameters before any search state exists.
func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("%w: population size must be positive, got %d",
			framework.ErrInvalidParameter, c.PopulationSize)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations must not be negative, got %d",
			framework.ErrInvalidParameter, c.MaxIterations)
	}
	if c.PerturbationRate < 0 || c.PerturbationRate > 1 {
		return fmt.Errorf("%w: perturbation rate must be in [0,1], got %g",
			framework.ErrInvalidParameter, c.PerturbationRate)
	}
	if c.Kappa <= 0 {
		return fmt.Errorf("%w: kappa must be positive, got %g",
			framework.ErrInvalidParameter, c.Kappa)
	}
	if c.LocalSearchDepth <= 0 {
		return fmt.Errorf("%w: local search depth must be positive, got %d",
			framework.ErrInvalidParameter, c.LocalSearchDepth)
	}
	if c.ArchiveCapacity <= 0 {
		return fmt.Errorf("%w: archive capacity must be positive, got %d",
			framework.ErrInvalidParameter, c.ArchiveCapacity)
	}
	if c.ArchiveCapacity > MaxArchiveCapacity {
		return fmt.Errorf("%w: archive capacity %d exceeds the supported maximum of %d",
			framework.ErrResourceExhausted, c.ArchiveCapacity, MaxArchiveCapacity)
	}
	return nil
}

// IBMOLS is the indicator-based multi-objective local search engine. It is
// single-threaded and deterministic for a fixed seed, problem and weight
// table. The archive returned by Run is the only state that survives a
// generation; working populations are discarded at every generation end.
type IBMOLS struct {
	problem *framework.Problem
	cycler  *WeightCycler
	cfg     Config
	rng     *rand.Rand
}

// New validates the problem, weight table and configuration and builds an
// engine. No search state is created if any input is rejected.
func New(problem *framework.Problem, weightTable [][]float64, cfg Config) (*IBMOLS, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cycler, err := NewWeightCycler(weightTable, problem.NumObjectives)
	if err != nil {
		return nil, err
	}
	return &IBMOLS{
		problem: problem,
		cycler:  cycler,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Run executes the full search and returns the Pareto archive. The loop per
// generation: advance the weight cycle, sample a working population from the
// archive, fold it, scalarize and seed fitness, run local search to its
// fixed point against a generation-local scratch archive, then fold the
// scratch archive into the persistent one. The survivor count of that last
// fold is the generation's yield. The loop stops on budget exhaustion, after
// two consecutive generations with zero yield, or when the caller's
// OnGeneration callback declines to continue.
func (e *IBMOLS) Run() *Archive {
	e.rng.Seed(e.cfg.Seed)
	e.cycler.Reset()

	klog.V(2).InfoS("Starting search", "algorithm", Name,
		"objectives", e.problem.NumObjectives, "items", e.problem.NumItems,
		"populationSize", e.cfg.PopulationSize, "maxIterations", e.cfg.MaxIterations,
		"weightVectors", e.cycler.Len(), "seed", e.cfg.Seed)

	archive := NewArchive(e.cfg.ArchiveCapacity)

	pop := make([]*framework.Individual, e.cfg.PopulationSize)
	for i := range pop {
		pop[i] = framework.RandomIndividual(e.problem, e.rng)
	}
	archive.Fold(pop)

	stagnant := 0
	for gen := 0; gen < e.cfg.MaxIterations; gen++ {
		weights := e.cycler.Next()

		pop = e.samplePopulation(archive)
		archive.Fold(pop)

		for _, x := range pop {
			scalarize(x, weights)
		}
		bound := maxScalarizedBound(pop)
		computeAllFitness(pop, e.cfg.Kappa, bound)

		scratch := NewArchive(e.cfg.ArchiveCapacity)
		e.localSearch(pop, scratch, weights)
		survivors := archive.Fold(scratch.members)

		if gen%10 == 0 {
			klog.V(3).InfoS("Generation complete", "generation", gen,
				"archiveSize", archive.Size(), "newSurvivors", survivors)
		}

		if e.cfg.OnGeneration != nil {
			stats := GenerationStats{
				Generation:   gen,
				ArchiveSize:  archive.Size(),
				NewSurvivors: survivors,
				WeightVector: weights,
			}
			if !e.cfg.OnGeneration(stats) {
				klog.V(2).InfoS("Search stopped by caller", "generation", gen)
				break
			}
		}

		if survivors == 0 {
			stagnant++
			if stagnant >= 2 {
				klog.V(2).InfoS("Search stagnated", "generation", gen,
					"archiveSize", archive.Size())
				break
			}
		} else {
			stagnant = 0
		}
	}

	klog.V(2).InfoS("Search finished", "archiveSize", archive.Size())
	return archive
}

// Run builds an engine and executes a full search in one call, for callers
// that do not need to reuse the engine.
func Run(problem *framework.Problem, weightTable [][]float64, cfg Config) (*Archive, error) {
	e, err := New(problem, weightTable, cfg)
	if err != nil {
		return nil, err
	}
	return e.Run(), nil
}

// samplePopulation draws alpha distinct archive members (as independent,
// optionally perturbed clones with their exploration state reset) and pads
// with fresh random individuals when the archive is smaller than alpha.
func (e *IBMOLS) samplePopulation(archive *Archive) []*framework.Individual {
	alpha := e.cfg.PopulationSize
	perm := e.rng.Perm(archive.Size())

	pop := make([]*framework.Individual, 0, alpha)
	for i := 0; i < alpha; i++ {
		if i < len(perm) {
			x := archive.members[perm[i]].Clone()
			x.Explored = false
			x.Fitness = -1.0
			e.perturb(x)
			pop = append(pop, x)
		} else {
			pop = append(pop, framework.RandomIndividual(e.problem, e.rng))
		}
	}
	return pop
}

// perturb swaps each order position with a random one at PerturbationRate
// and re-evaluates when anything moved.
func (e *IBMOLS) perturb(x *framework.Individual) {
	if e.cfg.PerturbationRate <= 0 {
		return
	}
	changed := false
	for i := range x.Order {
		if e.rng.Float64() < e.cfg.PerturbationRate {
			j := e.rng.Intn(len(x.Order))
			x.Order[i], x.Order[j] = x.Order[j], x.Order[i]
			changed = true
		}
	}
	if changed {
		framework.Evaluate(e.problem, x)
	}
}
