package gcode

// ArgSet records which parameters a command specified.
type ArgSet int

const (
	GArg ArgSet = 1 << iota
	FArg
	XArg
	YArg
	ZArg
)

// Command holds the parameters of one motion command. Fields not in Args were
// absent from the line and carry forward from the previous state.
type Command struct {
	Args ArgSet
	G    int
	F    float64
	X    float64
	Y    float64
	Z    float64
}

func (c Command) Has(a ArgSet) bool {
	return c.Args&a == a
}

// IsMotion reports whether line is a G0 (rapid) or G1 (linear) move. The G word
// must be exactly G0 or G1; G10, G01 and G1.0 are not moves.
func IsMotion(line string) bool {
	return isMotion(scanWords(line))
}

func isMotion(words []word) bool {
	for _, w := range words {
		if w.letter == 'G' && (w.text == "0" || w.text == "1") {
			return true
		}
	}
	return false
}

// ParseCommand extracts the G, F, X, Y and Z parameters from line. Only the first
// occurrence of each letter is used.
func ParseCommand(line string) Command {
	return parseCommand(scanWords(line))
}

func parseCommand(words []word) Command {
	var c Command
	for _, w := range words {
		switch w.letter {
		case 'G':
			if c.Has(GArg) {
				continue
			}
			if n, ok := w.integer(); ok {
				c.G = n
				c.Args |= GArg
			}
		case 'F':
			if !c.Has(FArg) {
				c.F = w.num
				c.Args |= FArg
			}
		case 'X':
			if !c.Has(XArg) {
				c.X = w.num
				c.Args |= XArg
			}
		case 'Y':
			if !c.Has(YArg) {
				c.Y = w.num
				c.Args |= YArg
			}
		case 'Z':
			if !c.Has(ZArg) {
				c.Z = w.num
				c.Args |= ZArg
			}
		}
	}
	return c
}
