package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const gcodeExt = ".gcode"

var listCmd = &cobra.Command{
	Use:   "list DIR",
	Short: "List the G-code files in a directory with their print durations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := gcodeFiles(args[0])
		if err != nil {
			return err
		}

		reports, err := estimateFiles(cmd.Context(), paths, cfg.Jobs, cfg.Options(), logger)
		if err != nil {
			return err
		}
		redact(reports)
		return errors.Wrap(writeReports(cmd.OutOrStdout(), output, reports), "writing estimates")
	},
}

// gcodeFiles returns the .gcode files directly inside dir, sorted by name.
func gcodeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), gcodeExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
