package gcode

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	mmPerInch   = 25.4
	secsPerMin  = 60.0
	defaultUnit = 1.0 // mm
)

type Position struct {
	X, Y, Z float64
}

func (pos Position) String() string {
	return fmt.Sprintf("{x: %s, y: %s, z: %s}",
		formatNumber(pos.X), formatNumber(pos.Y), formatNumber(pos.Z))
}

var (
	zeroPosition = Position{0.0, 0.0, 0.0}
)

// Distance returns the straight line distance between two positions.
func Distance(pos1, pos2 Position) float64 {
	return math.Hypot(math.Hypot(pos2.X-pos1.X, pos2.Y-pos1.Y), pos2.Z-pos1.Z)
}

// State is the position and feed rate (mm/min) in effect after a command.
type State struct {
	Position
	Feed float64
}

// Apply returns the state after c: each parameter present in c replaces the
// corresponding value and the rest carry forward.
func (st State) Apply(c Command) State {
	if c.Has(XArg) {
		st.X = c.X
	}
	if c.Has(YArg) {
		st.Y = c.Y
	}
	if c.Has(ZArg) {
		st.Z = c.Z
	}
	if c.Has(FArg) {
		st.Feed = c.F
	}
	return st
}

type engine struct {
	opts         options
	log          *zap.Logger
	state        State
	units        float64 // 1.0 for mm and 25.4 for in
	absoluteMode bool
	summary      Summary
}

func newEngine(o options) *engine {
	return &engine{
		opts:         o,
		log:          o.logger,
		state:        State{Position: zeroPosition, Feed: o.defaultFeed},
		units:        defaultUnit,
		absoluteMode: true,
	}
}

// evaluate processes one line of the program; num is its 1-based line number.
func (eng *engine) evaluate(line string, num int) error {
	eng.summary.Lines += 1

	words := scanWords(line)
	if len(words) == 0 {
		return nil
	}

	motion := isMotion(words)
	if eng.opts.modal {
		if eng.setModes(words, motion) {
			return nil
		}
	}
	if !motion {
		return nil
	}

	cmd := parseCommand(words)
	if eng.opts.modal {
		cmd = eng.toMachine(cmd)
	}
	next := eng.state.Apply(cmd)
	err := eng.move(eng.state, next, num)
	if err != nil {
		return err
	}
	eng.state = next
	return nil
}

// setModes applies the modal G codes on a line. It returns true if the line
// was fully handled and there is no move to make.
func (eng *engine) setModes(words []word, motion bool) bool {
	for _, w := range words {
		if w.letter != 'G' {
			continue
		}
		switch w.text {
		case "20": // G20: coordinates in inches
			eng.units = mmPerInch
		case "21": // G21: coordinates in mm
			eng.units = defaultUnit
		case "90": // G90: absolute distance mode
			eng.absoluteMode = true
		case "91": // G91: incremental distance mode
			eng.absoluteMode = false
		case "92": // G92: set current position
			if !motion {
				eng.setPosition(parseCommand(words))
				return true
			}
		}
	}
	return false
}

func (eng *engine) setPosition(cmd Command) {
	if cmd.Has(XArg) {
		eng.state.X = cmd.X * eng.units
	}
	if cmd.Has(YArg) {
		eng.state.Y = cmd.Y * eng.units
	}
	if cmd.Has(ZArg) {
		eng.state.Z = cmd.Z * eng.units
	}
}

// toMachine converts the parameters of cmd into absolute millimeters.
func (eng *engine) toMachine(cmd Command) Command {
	cmd.F *= eng.units
	cmd.X *= eng.units
	cmd.Y *= eng.units
	cmd.Z *= eng.units
	if !eng.absoluteMode {
		// relative
		cmd.X += eng.state.X
		cmd.Y += eng.state.Y
		cmd.Z += eng.state.Z
	}
	return cmd
}

// move adds the time to travel from prev to next at the feed rate of next.
func (eng *engine) move(prev, next State, num int) error {
	eng.summary.Moves += 1

	dist := Distance(prev.Position, next.Position)
	if dist == 0.0 {
		return nil
	}

	if next.Feed <= 0.0 {
		switch eng.opts.feedPolicy {
		case FeedSkip:
			eng.log.Warn("skipping move without a feed rate",
				zap.Int("line", num), zap.Float64("distance", dist), zap.Float64("feed", next.Feed))
			eng.summary.Distance += dist
			return nil
		default:
			return &DegenerateSpeedError{Line: num, Distance: dist, Feed: next.Feed}
		}
	}

	eng.summary.Distance += dist
	eng.summary.Seconds += dist / (next.Feed / secsPerMin)
	return nil
}
