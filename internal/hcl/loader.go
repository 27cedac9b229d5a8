package hcl

import (
	"context"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/nfa2dfa/internal/automaton"
	"github.com/vk/nfa2dfa/internal/codec"
	"github.com/vk/nfa2dfa/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the codec.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL automaton loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements codec.Loader.
func (l *Loader) Load(ctx context.Context, path string) ([]*automaton.Automaton, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &codec.ResourceError{Path: path, Err: err}
	}
	return Parse(ctx, path, src)
}

// Parse decodes an HCL automaton description. The result holds one automaton
// per automaton block, in file order. filename is used for diagnostics only.
func Parse(ctx context.Context, filename string, src []byte) ([]*automaton.Automaton, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, formatError(filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, formatError(filename, diags)
	}
	if len(root.Automata) == 0 {
		return nil, &codec.FormatError{Path: filename, Reason: "missing automaton block"}
	}

	out := make([]*automaton.Automaton, 0, len(root.Automata))
	for i, b := range root.Automata {
		a, diags := translate(ctx, b)
		if diags.HasErrors() {
			return nil, formatError(filename, diags)
		}
		logger.Debug("HCL automaton decoded.",
			"block", i+1,
			"symbols", a.Alphabet.Len(),
			"states", a.States.Len(),
			"transitions", a.TransitionCount(),
		)
		out = append(out, a)
	}

	logger.Debug("HCL loading complete.", "automata", len(out))
	return out, nil
}

// translate converts the decoded block into the automaton model.
func translate(ctx context.Context, b *automatonBlock) (*automaton.Automaton, hcl.Diagnostics) {
	a := automaton.New()
	a.Alphabet = automaton.NewSet(b.Alphabet...)
	a.States = automaton.NewSet(b.States...)
	a.Start = b.Start
	a.Final = automaton.NewSet(b.Final...)

	for _, t := range b.Transitions {
		targets, diags := decodeTargets(ctx, t.To)
		if diags.HasErrors() {
			return nil, diags
		}
		for _, to := range targets {
			a.AddTransition(t.From, t.Symbol, to)
		}
	}
	return a, nil
}

// formatError reports the first error diagnostic as a codec.FormatError.
func formatError(filename string, diags hcl.Diagnostics) error {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		fe := &codec.FormatError{Path: filename, Reason: d.Summary}
		if d.Detail != "" {
			fe.Reason += "; " + d.Detail
		}
		if d.Subject != nil {
			fe.Line = d.Subject.Start.Line
		}
		return fe
	}
	return &codec.FormatError{Path: filename, Reason: diags.Error()}
}
