package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate FILE...",
	Short: "Estimate the print duration of G-code files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := estimateFiles(cmd.Context(), args, cfg.Jobs, cfg.Options(), logger)
		if err != nil {
			return err
		}
		if err := writeReports(cmd.OutOrStdout(), output, reports); err != nil {
			return errors.Wrap(err, "writing estimates")
		}
		if n := failed(reports); n > 0 {
			return errors.Errorf("%d of %d files could not be estimated", n, len(reports))
		}
		return nil
	},
}
