package gcode

import (
	"fmt"
)

// NotFoundError is returned when a program path does not exist or cannot be opened.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gcode: %s: not found: %s", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IOError is returned when reading a program fails partway through.
type IOError struct {
	Path string
	Line int // Line being read when the failure occurred
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("gcode: line %d: read failed: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("gcode: %s:%d: read failed: %s", e.Path, e.Line, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// DegenerateSpeedError is returned when a move covers a non-zero distance while
// no positive feed rate is in effect.
type DegenerateSpeedError struct {
	Line     int
	Distance float64
	Feed     float64
}

func (e *DegenerateSpeedError) Error() string {
	return fmt.Sprintf("gcode: line %d: move of %s mm with feed rate %s",
		e.Line, formatNumber(e.Distance), formatNumber(e.Feed))
}
