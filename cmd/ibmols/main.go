// Command ibmols runs an indicator-based multi-objective local search over a
// 0/1 multi-objective knapsack instance and writes the resulting Pareto front.
//
// The instance and the scalarization weight table are either read from files
// or generated randomly, which makes the command usable both as a solver and
// as a quick benchmark harness.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/ibmols/pkg/algorithms"
	"github.com/mihai-snyk/ibmols/pkg/benchmarks"
	"github.com/mihai-snyk/ibmols/pkg/framework"
	"github.com/mihai-snyk/ibmols/pkg/loader"
)

type options struct {
	problemFile string
	weightsFile string
	outputFile  string

	randomObjectives int
	randomItems      int
	weightVectors    int

	cfg algorithms.Config
}

func newCommand() *cobra.Command {
	opts := options{cfg: algorithms.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "ibmols",
		Short: "Indicator-based multi-objective local search for 0/1 knapsack",
		Long: `ibmols approximates the Pareto front of a multi-objective 0/1 knapsack
instance with an indicator-based local search. Provide an instance with
--problem, or generate one with --random-items and --random-objectives.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&opts)
		},
	}

	opts.addFlags(cmd.Flags())
	return cmd
}

func (opts *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&opts.problemFile, "problem", "", "path to a knapsack instance file")
	fs.StringVar(&opts.weightsFile, "weights", "", "path to a scalarization weight table")
	fs.StringVar(&opts.outputFile, "output", "", "write the front's objective totals to this file")
	fs.IntVar(&opts.randomObjectives, "random-objectives", 2, "objectives for a generated instance")
	fs.IntVar(&opts.randomItems, "random-items", 0, "generate a random instance with this many items")
	fs.IntVar(&opts.weightVectors, "weight-vectors", 20, "rows in a generated weight table")
	fs.IntVar(&opts.cfg.PopulationSize, "population", opts.cfg.PopulationSize, "working population size")
	fs.IntVar(&opts.cfg.MaxIterations, "iterations", opts.cfg.MaxIterations, "generation budget")
	fs.Float64Var(&opts.cfg.PerturbationRate, "perturbation-rate", opts.cfg.PerturbationRate, "per-position order swap probability when sampling")
	fs.Float64Var(&opts.cfg.Kappa, "kappa", opts.cfg.Kappa, "fitness kernel scale")
	fs.IntVar(&opts.cfg.LocalSearchDepth, "depth", opts.cfg.LocalSearchDepth, "insertion attempts per local search step")
	fs.IntVar(&opts.cfg.ArchiveCapacity, "archive-capacity", opts.cfg.ArchiveCapacity, "maximum archived solutions")
	fs.Uint64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "random seed")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)
}

func run(opts *options) error {
	problem, err := loadProblem(opts)
	if err != nil {
		return err
	}
	table, err := loadWeights(opts, problem)
	if err != nil {
		return err
	}

	opts.cfg.OnGeneration = func(s algorithms.GenerationStats) bool {
		klog.V(1).InfoS("Generation", "generation", s.Generation,
			"archiveSize", s.ArchiveSize, "newSurvivors", s.NewSurvivors)
		return true
	}

	archive, err := algorithms.Run(problem, table, opts.cfg)
	if err != nil {
		return err
	}

	front := algorithms.ParetoFront(archive)
	mins, maxs := algorithms.ObjectiveRanges(front)
	fmt.Printf("front size: %d\n", len(front))
	for k := range mins {
		fmt.Printf("objective %d: [%g, %g]\n", k+1, mins[k], maxs[k])
	}

	if opts.outputFile != "" {
		if err := loader.WriteFront(opts.outputFile, front); err != nil {
			return err
		}
		klog.InfoS("Front written", "path", opts.outputFile, "solutions", len(front))
	}
	return nil
}

func loadProblem(opts *options) (*framework.Problem, error) {
	if opts.problemFile != "" {
		return loader.LoadProblem(opts.problemFile)
	}
	if opts.randomItems > 0 {
		rng := rand.New(rand.NewSource(opts.cfg.Seed))
		p := benchmarks.RandomMOKP(opts.randomObjectives, opts.randomItems, rng)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: either --problem or --random-items is required",
		framework.ErrInvalidParameter)
}

func loadWeights(opts *options, problem *framework.Problem) ([][]float64, error) {
	if opts.weightsFile != "" {
		return loader.LoadWeights(opts.weightsFile, problem.NumObjectives)
	}
	rng := rand.New(rand.NewSource(opts.cfg.Seed + 1))
	return benchmarks.UniformWeightTable(opts.weightVectors, problem.NumObjectives, rng), nil
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
