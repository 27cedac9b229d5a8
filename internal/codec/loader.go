package codec

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/nfa2dfa/internal/automaton"
	"github.com/vk/nfa2dfa/internal/ctxlog"
)

// Loader is the interface for a format-specific automaton reader.
type Loader interface {
	// Load reads the automaton descriptions at path, in file order. It
	// returns a *ResourceError when the file cannot be read and a
	// *FormatError when its contents cannot be tokenized. The results are not
	// validated.
	Load(ctx context.Context, path string) ([]*automaton.Automaton, error)
}

// TextLoader reads the line-oriented section format.
type TextLoader struct{}

// NewTextLoader creates a loader for the text format.
func NewTextLoader() *TextLoader {
	return &TextLoader{}
}

// Load implements Loader. A text file always holds a single automaton.
func (l *TextLoader) Load(ctx context.Context, path string) ([]*automaton.Automaton, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Text loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	a, err := Parse(ctx, path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return []*automaton.Automaton{a}, nil
}
