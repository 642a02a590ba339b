package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/printify/gcode/internal/config"
	"github.com/printify/gcode/pkg/log"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()

	feedPolicy  string
	defaultFeed float64
	modal       bool
	jobs        int
	logLevel    string
	output      string
)

var rootCmd = &cobra.Command{
	Use:          "gcestimate",
	Short:        "Estimate how long G-code programs take to print",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.New()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("feed-policy") {
			cfg.FeedPolicy = feedPolicy
		}
		if flags.Changed("default-feed") {
			cfg.DefaultFeed = defaultFeed
		}
		if flags.Changed("modal") {
			cfg.Modal = modal
		}
		if flags.Changed("jobs") {
			cfg.Jobs = jobs
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid configuration")
		}
		if output != "text" && output != "json" {
			return errors.Errorf("unknown output format: %q", output)
		}

		logger = log.InitLog(log.ParseLevel(cfg.LogLevel))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(listCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&feedPolicy, "feed-policy", "reject", "Moves without a feed rate: reject or skip")
	flags.Float64Var(&defaultFeed, "default-feed", 0, "Feed rate in mm/min before the program sets one")
	flags.BoolVar(&modal, "modal", false, "Honor G90/G91, G20/G21 and G92")
	flags.IntVarP(&jobs, "jobs", "j", 4, "Number of files estimated at once")
	flags.StringVar(&logLevel, "log-level", "info", "Log level")
	flags.StringVarP(&output, "output", "o", "text", "Output format: text or json")
}
