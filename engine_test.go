package gcode_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printify/gcode"
)

const tolerance = 1e-9

func TestApply(t *testing.T) {
	st := gcode.State{Position: gcode.Position{X: 1, Y: 2, Z: 3}, Feed: 600}

	assert.Equal(t, st, st.Apply(gcode.Command{}))
	assert.Equal(t, gcode.State{Position: gcode.Position{X: 10, Y: 2, Z: 3}, Feed: 600},
		st.Apply(gcode.ParseCommand("G1 X10")))
	assert.Equal(t, gcode.State{Position: gcode.Position{X: 0, Y: 0, Z: 0}, Feed: 1200},
		st.Apply(gcode.ParseCommand("G1 X0 Y0 Z0 F1200")))

	// Apply must not change the receiver.
	assert.Equal(t, 1.0, st.X)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, gcode.Distance(gcode.Position{}, gcode.Position{}))
	assert.InDelta(t, 5.0, gcode.Distance(gcode.Position{}, gcode.Position{X: 3, Y: 4}), tolerance)
	assert.InDelta(t, 13.0, gcode.Distance(gcode.Position{}, gcode.Position{X: 3, Y: 4, Z: 12}), tolerance)
	assert.InDelta(t, 2.0, gcode.Distance(gcode.Position{Z: 1}, gcode.Position{Z: -1}), tolerance)
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		s       string
		seconds float64
		moves   int
	}{
		{s: ``, seconds: 0},
		{s: `
G1 X10 Y0 Z0 F600
G1 X10 Y10 Z0 F600
`,
			seconds: 2.0,
			moves:   2,
		},
		{s: `G92 X0`, seconds: 0},
		{s: `
G1 X10 F600
G1 Y10
`,
			seconds: 2.0,
			moves:   2,
		},
		{s: `
G1 X10 F600
G1 X10 F600
G1 X10 F1
`,
			seconds: 1.0,
			moves:   3,
		},
		// Z motion counts.
		{s: `
G1 Z10 F600
`,
			seconds: 1.0,
			moves:   1,
		},
		{s: `
G1 X3 Y4 Z12 F780
`,
			seconds: 1.0,
			moves:   1,
		},
		// G0 and G1 are timed the same.
		{s: `
G0 X10 F600
G1 X20
`,
			seconds: 2.0,
			moves:   2,
		},
		// The feed of the move itself is used, not the previous feed.
		{s: `
G1 X10 F600
G1 X20 F1200
`,
			seconds: 1.5,
			moves:   2,
		},
		// G10 and G11 are not moves.
		{s: `
G1 X10 F600
G10 X100
G11
G100 X50
G1 X20
`,
			seconds: 2.0,
			moves:   2,
		},
		{s: `
; start
M104 S200
G28
G1 X10 F600 ; first
(pause here)

T0
G1 X10 Y10
M140 S60
`,
			seconds: 2.0,
			moves:   2,
		},
		// Malformed parameters carry forward.
		{s: `
G1 X10 F600
G1 X Y10 F
`,
			seconds: 2.0,
			moves:   2,
		},
		{s: "G1 X10 F600\r\nG1 Y10\r\n", seconds: 2.0, moves: 2},
		{s: "G1 X10 F600\nG1 Y10", seconds: 2.0, moves: 2},
	}

	for i, c := range cases {
		s, err := gcode.EstimateReader(strings.NewReader(c.s))
		if err != nil {
			t.Errorf("EstimateReader(%d) failed: %s", i, err)
			continue
		}
		assert.InDelta(t, c.seconds, s.Seconds, tolerance, "EstimateReader(%d)", i)
		assert.Equal(t, c.moves, s.Moves, "EstimateReader(%d)", i)
	}
}

func TestAdditivity(t *testing.T) {
	whole, err := gcode.EstimateReader(strings.NewReader("G1 X30 Y40 Z10 F900\n"))
	require.NoError(t, err)
	halves, err := gcode.EstimateReader(strings.NewReader("G1 X15 Y20 Z5 F900\nG1 X30 Y40 Z10\n"))
	require.NoError(t, err)

	assert.InDelta(t, whole.Seconds, halves.Seconds, tolerance)
	assert.InDelta(t, whole.Distance, halves.Distance, tolerance)
}

func TestNonMotionLinesIgnored(t *testing.T) {
	prog := []string{"G1 X10 F600", "G1 Y10", "G1 Z5 F300", "G0 X0 Y0"}
	noise := []string{"M104 S210", "", "; comment", "(inline)", "G92 X0", "M107", "T1", "G10 P1"}

	base, err := gcode.EstimateReader(strings.NewReader(strings.Join(prog, "\n")))
	require.NoError(t, err)

	var lines []string
	for i, l := range prog {
		lines = append(lines, noise[i%len(noise)], l, noise[(i+3)%len(noise)])
	}
	noisy, err := gcode.EstimateReader(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)

	assert.InDelta(t, base.Seconds, noisy.Seconds, tolerance)
	assert.Equal(t, base.Moves, noisy.Moves)
}

func TestFeedPolicy(t *testing.T) {
	cases := []struct {
		s       string
		opts    []gcode.Option
		seconds float64
		line    int
	}{
		{s: "G1 X10\n", line: 1},
		{s: "G1 X10 F0\n", line: 1},
		{s: "G1 X10 F-600\n", line: 1},
		{s: "G1 F600\nG1 X10\nG1 Y10 F0\n", line: 3},
		{s: "G1 X0 Y0\n", seconds: 0},
		{s: "G1 X10\nG1 Y10 F600\n", opts: []gcode.Option{gcode.WithFeedPolicy(gcode.FeedSkip)}, seconds: 1.0},
		{s: "G1 X10\n", opts: []gcode.Option{gcode.WithDefaultFeed(600)}, seconds: 1.0},
		{s: "G1 X10 F0\n", opts: []gcode.Option{gcode.WithDefaultFeed(600)}, line: 1},
	}

	for i, c := range cases {
		s, err := gcode.EstimateReader(strings.NewReader(c.s), c.opts...)
		if c.line > 0 {
			var dse *gcode.DegenerateSpeedError
			if assert.True(t, errors.As(err, &dse), "EstimateReader(%d): got %v", i, err) {
				assert.Equal(t, c.line, dse.Line)
				assert.Greater(t, dse.Distance, 0.0)
			}
			assert.Equal(t, gcode.Summary{}, s)
			continue
		}
		require.NoError(t, err, "EstimateReader(%d)", i)
		assert.InDelta(t, c.seconds, s.Seconds, tolerance, "EstimateReader(%d)", i)
		assert.False(t, math.IsInf(s.Seconds, 0) || math.IsNaN(s.Seconds))
	}
}

func TestModal(t *testing.T) {
	cases := []struct {
		s       string
		modal   bool
		seconds float64
	}{
		// Relative moves.
		{s: `
G91
G1 X10 F600
G1 X10
`,
			modal:   true,
			seconds: 2.0,
		},
		{s: `
G91
G1 X10 F600
G1 X10
`,
			modal:   false,
			seconds: 1.0,
		},
		// Inches.
		{s: `
G20
G1 X1 F60
`,
			modal:   true,
			seconds: 1.0,
		},
		// G92 resets the position without moving.
		{s: `
G1 X10 F600
G92 X0
G1 X10
`,
			modal:   true,
			seconds: 2.0,
		},
		{s: `
G1 X10 F600
G92 X0
G1 X10
`,
			modal:   false,
			seconds: 1.0,
		},
		{s: `
G91 G21
G1 X5 Y5 F600
G90
G1 X0 Y0
`,
			modal:   true,
			seconds: 2 * math.Sqrt(50) / 10,
		},
	}

	for i, c := range cases {
		s, err := gcode.EstimateReader(strings.NewReader(c.s), gcode.WithModal(c.modal))
		if err != nil {
			t.Errorf("EstimateReader(%d) failed: %s", i, err)
			continue
		}
		assert.InDelta(t, c.seconds, s.Seconds, tolerance, "EstimateReader(%d)", i)
	}
}

func TestSummaryDuration(t *testing.T) {
	s := gcode.Summary{Seconds: 90.5}
	assert.Equal(t, "1m30.5s", s.Duration().String())
}
