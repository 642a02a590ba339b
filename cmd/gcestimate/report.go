package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/printify/gcode"
)

const couldNotEstimate = "could not estimate duration"

// fileReport is the estimate of one file along with when it was last modified.
type fileReport struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
	Date     string  `json:"date,omitempty"`
	Error    string  `json:"error,omitempty"`

	err error
}

func estimateFile(path string, opts []gcode.Option) fileReport {
	rpt := fileReport{Name: path}
	if fi, err := os.Stat(path); err == nil {
		rpt.Date = fi.ModTime().UTC().Format(time.RFC3339)
	}

	seconds, err := gcode.EstimateDuration(path, opts...)
	if err != nil {
		rpt.err = err
		rpt.Error = err.Error()
		return rpt
	}
	rpt.Duration = seconds
	return rpt
}

// estimateFiles estimates each path with at most jobs running at once. The
// reports are in the same order as paths; a failed file does not stop the others.
func estimateFiles(ctx context.Context, paths []string, jobs int, opts []gcode.Option,
	l *zap.Logger) ([]fileReport, error) {

	reports := make([]fileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fileOpts := append([]gcode.Option{gcode.WithLogger(l.Named("estimate"))}, opts...)
			reports[i] = estimateFile(path, fileOpts)
			if reports[i].err != nil {
				l.Debug(couldNotEstimate, zap.String("path", path), zap.Error(reports[i].err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// redact replaces error details with a generic message.
func redact(reports []fileReport) {
	for i := range reports {
		if reports[i].err != nil {
			reports[i].Error = couldNotEstimate
		}
	}
}

func failed(reports []fileReport) int {
	var n int
	for _, rpt := range reports {
		if rpt.err != nil {
			n += 1
		}
	}
	return n
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	return d.Round(time.Second).String()
}

func writeReports(w io.Writer, format string, reports []fileReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSECONDS\tDURATION\tDATE")
	for _, rpt := range reports {
		name := filepath.Base(rpt.Name)
		if rpt.err != nil {
			fmt.Fprintf(tw, "%s\t-\t%s\t%s\n", name, rpt.Error, rpt.Date)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%s\t%s\n", name, rpt.Duration, formatDuration(rpt.Duration), rpt.Date)
	}
	return tw.Flush()
}
