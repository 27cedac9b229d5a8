package codec

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/vk/nfa2dfa/internal/automaton"
	"github.com/vk/nfa2dfa/internal/ctxlog"
)

// Section headers of the text format. They are case-sensitive.
const (
	HeaderAlphabet    = "ALPHABET"
	HeaderStates      = "STATES"
	HeaderStart       = "START"
	HeaderFinal       = "FINAL"
	HeaderTransitions = "TRANSITIONS"
	HeaderEnd         = "END"
)

type section int

const (
	sectionNone section = iota
	sectionAlphabet
	sectionStates
	sectionStart
	sectionFinal
	sectionTransitions
)

var headers = map[string]section{
	HeaderAlphabet:    sectionAlphabet,
	HeaderStates:      sectionStates,
	HeaderStart:       sectionStart,
	HeaderFinal:       sectionFinal,
	HeaderTransitions: sectionTransitions,
}

// Parse reads an automaton in the text format from r. name is used only in
// error messages. Lines are trimmed and blank lines are skipped; parsing
// stops at END or at the end of input.
//
// A transition line must have exactly three fields. Content outside any
// section and a second START line are rejected as well.
func Parse(ctx context.Context, name string, r io.Reader) (*automaton.Automaton, error) {
	logger := ctxlog.FromContext(ctx)
	a := automaton.New()

	scanner := bufio.NewScanner(r)
	current := sectionNone
	lineNo := 0
	startLine := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == HeaderEnd {
			logger.Debug("End of automaton reached.", "line", lineNo)
			break
		}
		if s, ok := headers[line]; ok {
			current = s
			continue
		}

		switch current {
		case sectionNone:
			return nil, &FormatError{Path: name, Line: lineNo, Text: line, Reason: "content before the first section header"}
		case sectionAlphabet:
			a.Alphabet.Add(line)
		case sectionStates:
			a.States.Add(line)
		case sectionStart:
			if startLine != 0 {
				return nil, &FormatError{Path: name, Line: lineNo, Text: line, Reason: "START takes exactly one state"}
			}
			startLine = lineNo
			a.Start = line
		case sectionFinal:
			a.Final.Add(line)
		case sectionTransitions:
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, &FormatError{Path: name, Line: lineNo, Text: line, Reason: "malformed transition, want <state> <symbol> <next_state>"}
			}
			a.AddTransition(fields[0], fields[1], fields[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ResourceError{Path: name, Err: err}
	}

	logger.Debug("Automaton parsed.",
		"symbols", a.Alphabet.Len(),
		"states", a.States.Len(),
		"final", a.Final.Len(),
		"transitions", a.TransitionCount(),
	)
	return a, nil
}

// Serialize writes a in the canonical text format: sorted alphabet, sorted
// states, the start state, sorted final states, then every transition in
// sorted state, symbol and destination order, terminated by END.
func Serialize(w io.Writer, a *automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	symbols := a.Alphabet.Sorted()
	states := a.States.Sorted()

	writeSection(bw, HeaderAlphabet, symbols)
	writeSection(bw, HeaderStates, states)
	var start []string
	if a.Start != "" {
		start = []string{a.Start}
	}
	writeSection(bw, HeaderStart, start)
	writeSection(bw, HeaderFinal, a.Final.Sorted())

	bw.WriteString(HeaderTransitions + "\n")
	for _, state := range states {
		for _, symbol := range symbols {
			for _, next := range a.Next(state, symbol).Sorted() {
				bw.WriteString(state + " " + symbol + " " + next + "\n")
			}
		}
	}
	bw.WriteString(HeaderEnd + "\n")
	return bw.Flush()
}

func writeSection(bw *bufio.Writer, header string, lines []string) {
	bw.WriteString(header + "\n")
	for _, l := range lines {
		bw.WriteString(l + "\n")
	}
}
