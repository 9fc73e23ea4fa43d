package tmpl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/extport/internal/ctxlog"
	"github.com/specialistvlad/extport/internal/port"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// functions available to every template.
var functions = map[string]function.Function{
	"upper":  stdlib.UpperFunc,
	"lower":  stdlib.LowerFunc,
	"join":   stdlib.JoinFunc,
	"format": stdlib.FormatFunc,
	"length": stdlib.LengthFunc,
	"max":    stdlib.MaxFunc,
}

// Render evaluates src as an HCL template. The keys of the lookup become the
// template's top-level variables.
func Render(ctx context.Context, name, src string, a port.Attributes) (string, error) {
	logger := ctxlog.FromContext(ctx)

	expr, diags := hclsyntax.ParseTemplate([]byte(src), name, hcl.InitialPos)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to parse template %s: %w", name, diags)
	}

	root, err := ToCty(a)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	evalCtx := &hcl.EvalContext{
		Variables: root.AsValueMap(),
		Functions: functions,
	}
	available := make(map[string]struct{}, len(evalCtx.Variables))
	for k := range evalCtx.Variables {
		available[k] = struct{}{}
	}
	if err := checkReferences(expr, available); err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	logger.Debug("Rendering template.", "template", name, "variables", len(evalCtx.Variables))

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to render template %s: %w", name, diags)
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("template %s produced %s, not a string: %w", name, val.Type().FriendlyName(), err)
	}
	if strVal.IsNull() || !strVal.IsKnown() {
		return "", fmt.Errorf("template %s produced no value", name)
	}
	return strVal.AsString(), nil
}
