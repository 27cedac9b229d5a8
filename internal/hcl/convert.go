package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/nfa2dfa/internal/ctxlog"
)

// targetsType is the cty type every `to` value is converted to.
var targetsType = cty.List(cty.String)

// decodeTargets evaluates a transition's `to` expression. A single string is
// one destination; any list, set or tuple of strings is a set of
// destinations.
func decodeTargets(ctx context.Context, expr hcl.Expression) ([]string, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, targetDiag(expr, "destination must be a known, non-null value")
	}

	if val.Type().Equals(cty.String) {
		return []string{val.AsString()}, nil
	}

	converted, err := convert.Convert(val, targetsType)
	if err != nil {
		return nil, targetDiag(expr, fmt.Sprintf("cannot convert %s to %s: %s", val.Type().FriendlyName(), targetsType.FriendlyName(), err))
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted transition targets.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	var targets []string
	if err := gocty.FromCtyValue(converted, &targets); err != nil {
		return nil, targetDiag(expr, err.Error())
	}
	return targets, nil
}

func targetDiag(expr hcl.Expression, detail string) hcl.Diagnostics {
	rng := expr.Range()
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid transition destination",
		Detail:   detail,
		Subject:  &rng,
	}}
}
