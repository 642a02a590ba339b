package gcode

import (
	"io"
	"time"

	"go.uber.org/zap"
)

// Summary is the result of estimating one program.
type Summary struct {
	Seconds  float64 // Estimated run time
	Distance float64 // Total distance moved in mm
	Lines    int     // Lines read
	Moves    int     // G0 and G1 commands
}

// Duration returns the estimated run time as a time.Duration.
func (s Summary) Duration() time.Duration {
	return time.Duration(s.Seconds * float64(time.Second))
}

// EstimateDuration returns the number of seconds the G-code program at path is
// expected to take. It is Estimate reduced to the run time.
func EstimateDuration(path string, opts ...Option) (float64, error) {
	s, err := Estimate(path, opts...)
	if err != nil {
		return 0, err
	}
	return s.Seconds, nil
}

// Estimate replays the G0 and G1 moves of the program at path. Any error
// discards the whole estimate.
func Estimate(path string, opts ...Option) (Summary, error) {
	ls, err := OpenLines(path)
	if err != nil {
		return Summary{}, err
	}
	defer ls.Close()

	o := newOptions(opts)
	o.logger = o.logger.With(zap.String("path", path))
	return estimate(ls, o)
}

// EstimateReader is Estimate for a program that is not in a file.
func EstimateReader(r io.Reader, opts ...Option) (Summary, error) {
	return estimate(newLineSource("", r), newOptions(opts))
}

func estimate(ls *LineSource, o options) (Summary, error) {
	eng := newEngine(o)
	for ls.Next() {
		err := eng.evaluate(ls.Text(), ls.Line())
		if err != nil {
			return Summary{}, err
		}
	}
	if err := ls.Err(); err != nil {
		return Summary{}, err
	}

	eng.log.Debug("estimated program",
		zap.Int("lines", eng.summary.Lines),
		zap.Int("moves", eng.summary.Moves),
		zap.Float64("distance", eng.summary.Distance),
		zap.Float64("seconds", eng.summary.Seconds))
	return eng.summary, nil
}
