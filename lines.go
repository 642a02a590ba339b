package gcode

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"
)

// LineSource reads a program one line at a time. Only the current line is held
// in memory. It must be closed when no longer needed.
type LineSource struct {
	path string
	f    *os.File
	r    *bufio.Reader
	text string
	line int
	err  error
	eof  bool
}

// OpenLines opens path for reading. A path that does not exist or cannot be
// opened returns a *NotFoundError.
func OpenLines(path string) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return newLineSource(path, f), nil
}

func newLineSource(path string, r io.Reader) *LineSource {
	ls := &LineSource{
		path: path,
		r:    bufio.NewReader(r),
	}
	if f, ok := r.(*os.File); ok {
		ls.f = f
	}
	return ls
}

// Next advances to the next line, which is then available through Text. It
// returns false at the end of the input or after a read failure; Err
// distinguishes the two.
func (ls *LineSource) Next() bool {
	if ls.eof || ls.err != nil {
		return false
	}

	s, err := ls.r.ReadString('\n')
	if err == io.EOF {
		ls.eof = true
		if s == "" {
			return false
		}
	} else if err != nil {
		ls.err = &IOError{Path: ls.path, Line: ls.line + 1, Err: err}
		return false
	}

	ls.line += 1
	s = strings.TrimSuffix(s, "\n")
	ls.text = strings.TrimSuffix(s, "\r")
	return true
}

// Text returns the current line without its line separator.
func (ls *LineSource) Text() string {
	return ls.text
}

// Line returns the 1-based number of the current line.
func (ls *LineSource) Line() int {
	return ls.line
}

// Err returns the *IOError that stopped Next, if any.
func (ls *LineSource) Err() error {
	return ls.err
}

// Close releases the underlying file. It is safe to call more than once.
func (ls *LineSource) Close() error {
	if ls.f == nil {
		return nil
	}
	err := ls.f.Close()
	ls.f = nil
	return err
}

// Lines returns the lines of the file at path as a sequence. The file is opened
// when iteration starts and closed when it ends, including when the loop body
// breaks early. An open or read failure is yielded once as the final element.
func Lines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ls, err := OpenLines(path)
		if err != nil {
			yield("", err)
			return
		}
		defer ls.Close()

		for ls.Next() {
			if !yield(ls.Text(), nil) {
				return
			}
		}
		if err := ls.Err(); err != nil {
			yield("", err)
		}
	}
}
