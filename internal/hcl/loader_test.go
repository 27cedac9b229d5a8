package hcl

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nfa2dfa/internal/automaton"
	"github.com/vk/nfa2dfa/internal/codec"
)

const exampleHCL = `
automaton {
  alphabet = ["a", "b"]
  states   = ["q0", "q1"]
  start    = "q0"
  final    = ["q1"]

  transition "q0" "a" {
    to = ["q0", "q1"]
  }

  transition "q1" "b" {
    to = "q1"
  }
}
`

// parseOne parses src and requires exactly one automaton block.
func parseOne(t *testing.T, name, src string) *automaton.Automaton {
	t.Helper()
	automata, err := Parse(context.Background(), name, []byte(src))
	require.NoError(t, err)
	require.Len(t, automata, 1)
	return automata[0]
}

func TestParse_Example(t *testing.T) {
	a := parseOne(t, "example.hcl", exampleHCL)

	assert.Equal(t, []string{"a", "b"}, a.Alphabet.Sorted())
	assert.Equal(t, []string{"q0", "q1"}, a.States.Sorted())
	assert.Equal(t, "q0", a.Start)
	assert.Equal(t, []string{"q1"}, a.Final.Sorted())
	assert.Equal(t, []string{"q0", "q1"}, a.Next("q0", "a").Sorted())
	assert.Equal(t, []string{"q1"}, a.Next("q1", "b").Sorted())
	assert.Equal(t, 3, a.TransitionCount())
}

func TestParse_RepeatedTransitionBlocksMerge(t *testing.T) {
	src := `
automaton {
  alphabet = ["a"]
  states   = ["q0", "q1"]
  start    = "q0"

  transition "q0" "a" { to = "q0" }
  transition "q0" "a" { to = ["q1", "q0"] }
}
`
	a := parseOne(t, "merge.hcl", src)
	assert.Equal(t, []string{"q0", "q1"}, a.Next("q0", "a").Sorted())
	assert.Empty(t, a.Final.Sorted())
}

func TestParse_OptionalStartMayBeOmitted(t *testing.T) {
	src := `
automaton {
  alphabet = []
  states   = ["q0"]
}
`
	a := parseOne(t, "nostart.hcl", src)
	assert.Equal(t, "", a.Start)
}

func TestParse_MultipleBlocksKeepFileOrder(t *testing.T) {
	src := exampleHCL + `
automaton {
  alphabet = ["x"]
  states   = ["p"]
  start    = "p"
  final    = ["p"]

  transition "p" "x" { to = "p" }
}
`
	automata, err := Parse(context.Background(), "two.hcl", []byte(src))
	require.NoError(t, err)
	require.Len(t, automata, 2)

	assert.Equal(t, "q0", automata[0].Start)
	assert.Equal(t, []string{"a", "b"}, automata[0].Alphabet.Sorted())
	assert.Equal(t, "p", automata[1].Start)
	assert.Equal(t, []string{"x"}, automata[1].Alphabet.Sorted())
	assert.Equal(t, []string{"p"}, automata[1].Next("p", "x").Sorted())
}

func TestParse_FormatErrorInLaterBlock(t *testing.T) {
	src := exampleHCL + "automaton {\n  alphabet = []\n  states = []\n  colour = \"red\"\n}\n"

	automata, err := Parse(context.Background(), "bad.hcl", []byte(src))
	require.Error(t, err)
	assert.Nil(t, automata)

	var fmtErr *codec.FormatError
	require.True(t, errors.As(err, &fmtErr), "got %T: %v", err, err)
	assert.Equal(t, "bad.hcl", fmtErr.Path)
}

func TestParse_FormatErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		line int // -1 when the position is not asserted
	}{
		{
			name: "syntax error",
			src:  "automaton {\n  alphabet = [\"a\"\n",
			line: -1,
		},
		{
			name: "missing block",
			src:  "",
			line: 0,
		},
		{
			name: "unknown attribute",
			src:  "automaton {\n  alphabet = []\n  states = []\n  colour = \"red\"\n}\n",
			line: 4,
		},
		{
			name: "missing required states",
			src:  "automaton {\n  alphabet = []\n}\n",
			line: -1,
		},
		{
			name: "destination of the wrong type",
			src:  "automaton {\n  alphabet = [\"a\"]\n  states = [\"q0\"]\n  transition \"q0\" \"a\" {\n    to = { x = 1 }\n  }\n}\n",
			line: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Parse(context.Background(), "bad.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.Nil(t, a)

			var fmtErr *codec.FormatError
			require.True(t, errors.As(err, &fmtErr), "got %T: %v", err, err)
			assert.Equal(t, "bad.hcl", fmtErr.Path)
			if tc.line >= 0 {
				assert.Equal(t, tc.line, fmtErr.Line)
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.hcl")
	require.NoError(t, os.WriteFile(path, []byte(exampleHCL), 0o600))

	automata, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, automata, 1)
	assert.Equal(t, "q0", automata[0].Start)
}

func TestLoader_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.hcl")

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)

	var resErr *codec.ResourceError
	require.True(t, errors.As(err, &resErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "File not found: "+path, err.Error())
}
