package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/epi-abm/epi-abm/sim"
)

var (
	// CLI flags for the simulation run
	seed           int64   // Seed for the shared random source
	populationSize int     // Number of agents created at initialization
	numYears       float64 // Total simulated duration (years)
	timeStep       float64 // Length of one step (years)
	startDate      float64 // Calendar year offset for report dates
	probNewPartner float64 // Per-step probability of a new sexual contact
	forceInfection float64 // Per-contact transmission probability
	logLevel       string  // Log verbosity level
	scenarioPath   string  // Optional YAML scenario file
	csvOutput      bool    // Emit the time series as CSV instead of text
	noVerbose      bool    // Suppress the pre/post-run demographic summary
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "epi-abm",
	Short: "Discrete-time stochastic simulator for HIV transmission dynamics",
}

// runCmd executes the simulation using parameters from CLI flags,
// optionally overlaid on a YAML scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the transmission simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		params := sim.DefaultParameters()
		if scenarioPath != "" {
			params, err = loadScenario(scenarioPath, params)
			if err != nil {
				logrus.Fatalf("Failed to load scenario %q: %v", scenarioPath, err)
			}
		}
		// Explicitly set flags win over scenario values
		applyFlagOverrides(cmd, &params)

		s, err := sim.NewSimulator(params, os.Stdout, csvOutput)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		// Demographic sanity check before the run, baseline report, the run
		// itself, then the post-run demographics.
		if !noVerbose {
			s.Reporter.VerboseSummary(s.Population)
		}
		s.Reporter.Report(params.StartDate, s.Population)
		s.Run()
		if !noVerbose {
			s.Reporter.VerboseSummary(s.Population)
		}
		s.Metrics.Print(os.Stdout)

		logrus.Info("Simulation complete.")
	},
}

// applyFlagOverrides copies each run flag the user explicitly set onto
// params, leaving scenario or default values in place otherwise.
func applyFlagOverrides(cmd *cobra.Command, params *sim.Parameters) {
	f := cmd.Flags()
	if f.Changed("seed") {
		params.Seed = seed
	}
	if f.Changed("population") {
		params.PopulationSize = populationSize
	}
	if f.Changed("num-years") {
		params.NumYears = numYears
	}
	if f.Changed("time-step") {
		params.TimeStep = timeStep
	}
	if f.Changed("start-date") {
		params.StartDate = startDate
	}
	if f.Changed("prob-new-partner") {
		params.ProbNewPartner = probNewPartner
	}
	if f.Changed("force-infection") {
		params.ForceInfection = forceInfection
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags()

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}

func registerRunFlags() {
	defaults := sim.DefaultParameters()

	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for the random source (fixed seed gives reproducible runs)")
	runCmd.Flags().IntVar(&populationSize, "population", defaults.PopulationSize, "Number of agents")
	runCmd.Flags().Float64Var(&numYears, "num-years", defaults.NumYears, "Total simulated duration in years")
	runCmd.Flags().Float64Var(&timeStep, "time-step", defaults.TimeStep, "Years per step (remember to rescale --prob-new-partner when changing this)")
	runCmd.Flags().Float64Var(&startDate, "start-date", defaults.StartDate, "Calendar year offset for report dates")
	runCmd.Flags().Float64Var(&probNewPartner, "prob-new-partner", defaults.ProbNewPartner, "Per-step probability of a new sexual contact")
	runCmd.Flags().Float64Var(&forceInfection, "force-infection", defaults.ForceInfection, "Per-contact transmission probability given an HIV+ contact")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file")
	runCmd.Flags().BoolVar(&csvOutput, "csv", false, "Emit the per-step time series as CSV")
	runCmd.Flags().BoolVar(&noVerbose, "no-verbose", false, "Suppress the pre/post-run demographic summary")
}
