package game

import "errors"

// ErrEndOfInput is returned when the input provider has no more lines
var ErrEndOfInput = errors.New("end of input")

// Input provides one line of player input per call. Implementations return
// ErrEndOfInput (possibly wrapped) once input is closed.
type Input interface {
	ReadLine() (string, error)
}

// Output displays one line of text per call, in order
type Output interface {
	WriteLine(line string)
}

// ScriptedInput replays a fixed list of lines and then reports end of input
type ScriptedInput struct {
	lines []string
	index int
}

// NewScriptedInput creates an input provider that yields the given lines
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

// ReadLine returns the next scripted line
func (s *ScriptedInput) ReadLine() (string, error) {
	if s.index >= len(s.lines) {
		return "", ErrEndOfInput
	}
	line := s.lines[s.index]
	s.index++
	return line, nil
}

// Remaining returns how many scripted lines have not been read
func (s *ScriptedInput) Remaining() int {
	return len(s.lines) - s.index
}

// Transcript is an Output that records every line it is given
type Transcript struct {
	Lines []string
}

// WriteLine records a line
func (t *Transcript) WriteLine(line string) {
	t.Lines = append(t.Lines, line)
}

// Contains reports whether any recorded line equals line
func (t *Transcript) Contains(line string) bool {
	for _, l := range t.Lines {
		if l == line {
			return true
		}
	}
	return false
}
