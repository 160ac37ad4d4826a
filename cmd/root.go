package cmd

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/j-r-j/Gm-sim-sub016/league"
	"github.com/j-r-j/Gm-sim-sub016/league/gen"
)

var (
	// CLI flags for the simulation run
	seed          int64  // Seed for the partitioned random source
	years         int    // Number of league years to pre-simulate
	startYear     int    // Real calendar year play begins after the pre-sim
	logLevel      string // Log verbosity level
	leagueConfig  string // Optional YAML file naming the 32 franchises and tuning knobs
	maxByesPW     int    // Bye-balance ceiling for the primary scheduler
	rosterLimit   int    // Active-roster ceiling after offseason maintenance
	quietProgress bool   // Suppress per-year progress logging
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gridiron",
	Short: "Multi-year professional football league simulator",
}

// simulateCmd runs the multi-year pre-simulation using parameters from CLI flags
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate N league years and report the resulting history",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := league.DefaultConfig()
		cfg.MaxByesPerWeek = maxByesPW
		cfg.RosterLimit = rosterLimit

		meta := gen.DefaultLeague()
		if leagueConfig != "" {
			meta, cfg, err = LoadLeagueConfig(leagueConfig, cfg)
			if err != nil {
				return err
			}
		}

		generator := gen.New()
		gens := league.Generators{
			Roster:     generator,
			DraftClass: generator,
			Contracts:  generator,
			Coaches:    generator,
		}
		prng := league.NewPartitionedRNG(league.NewSimulationKey(seed))

		state, err := league.NewLeague(cfg, meta, startYear-years, gens, prng)
		if err != nil {
			return err
		}

		logrus.Infof("Simulating %d league years (seed=%d), landing on %d", years, seed, startYear)
		startTime := time.Now()

		progress := func(yearIndex, totalYears int, phase league.Phase) {
			if quietProgress {
				return
			}
			logrus.Infof("year %d/%d: %s complete", yearIndex+1, totalYears, phase)
		}

		result, err := league.SimulateHistory(context.Background(), state, years, league.HistoryOptions{
			StartYear:  startYear,
			Generators: gens,
			RNG:        prng,
			Progress:   progress,
		})
		if err != nil {
			return err
		}
		result.Print()

		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands. A .env file and GRIDIRON_*
// environment variables supply defaults that explicit flags override.
func init() {
	_ = godotenv.Load()
	env := loadEnvDefaults()

	simulateCmd.Flags().Int64Var(&seed, "seed", env.Seed, "Seed for the partitioned random source")
	simulateCmd.Flags().IntVar(&years, "years", env.Years, "Number of league years to pre-simulate")
	simulateCmd.Flags().IntVar(&startYear, "start-year", env.StartYear, "Calendar year play begins after the pre-simulation")
	simulateCmd.Flags().StringVar(&logLevel, "log", env.Log, "Log level (trace, debug, info, warn, error, fatal, panic)")
	simulateCmd.Flags().StringVar(&leagueConfig, "league-config", "", "YAML file naming the franchises and tuning knobs")
	simulateCmd.Flags().IntVar(&maxByesPW, "max-byes-per-week", league.DefaultConfig().MaxByesPerWeek, "Max teams sharing one bye week")
	simulateCmd.Flags().IntVar(&rosterLimit, "roster-limit", league.DefaultConfig().RosterLimit, "Active-roster ceiling after offseason maintenance")
	simulateCmd.Flags().BoolVar(&quietProgress, "quiet", false, "Suppress per-year progress logging")

	rootCmd.AddCommand(simulateCmd)
}
