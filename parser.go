package gcode

import (
	"strconv"
)

type Letter byte

// word is a letter followed by a numeric literal, such as G1 or X-10.5.
type word struct {
	letter Letter
	text   string // numeric text as written, including any sign
	num    float64
}

func (w word) String() string {
	return string(rune(w.letter)) + w.text
}

// integer returns the value of the word if it is a whole number.
func (w word) integer() (int, bool) {
	n := int(w.num)
	if float64(n) != w.num {
		return 0, false
	}
	return n, true
}

type scanner struct {
	line string
	pos  int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.line)
}

func (s *scanner) peekByte() byte {
	if s.pos >= len(s.line) {
		return 0
	}
	return s.line[s.pos]
}

func (s *scanner) readByte() byte {
	b := s.peekByte()
	s.pos += 1
	return b
}

func (s *scanner) skipDigits() int {
	var cnt int
	for !s.done() {
		b := s.peekByte()
		if b < '0' || b > '9' {
			break
		}
		cnt += 1
		s.pos += 1
	}
	return cnt
}

// parseNumber scans [+-]digits[.digits] and returns the literal text. An empty
// string means no digits followed and the scanner is left where it started.
func (s *scanner) parseNumber() string {
	start := s.pos
	if b := s.peekByte(); b == '-' || b == '+' {
		s.pos += 1
	}

	cnt := s.skipDigits()
	if s.peekByte() == '.' {
		s.pos += 1
		cnt += s.skipDigits()
	}

	if cnt == 0 {
		s.pos = start
		return ""
	}
	return s.line[start:s.pos]
}

// skipComment skips over an inline comment delimited by ( and ). An unclosed
// comment runs to the end of the line.
func (s *scanner) skipComment() {
	for !s.done() {
		if s.readByte() == ')' {
			return
		}
	}
}

// scanWords splits one line into its words. Comments, checksums (*nnn) and any
// bytes that do not form a word are dropped. A letter that is not immediately
// followed by a number does not produce a word.
func scanWords(line string) []word {
	var words []word
	s := scanner{line: line}
	for !s.done() {
		b := upcaseByte(s.readByte())
		switch {
		case b == ';' || b == '%':
			return words
		case b == '(':
			s.skipComment()
		case b == '*':
			s.skipDigits()
		case b >= 'A' && b <= 'Z':
			text := s.parseNumber()
			if text == "" {
				break
			}
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				break
			}
			words = append(words, word{letter: Letter(b), text: text, num: num})
		}
	}
	return words
}

func upcaseByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return (b - 'a') + 'A'
	}
	return b
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
