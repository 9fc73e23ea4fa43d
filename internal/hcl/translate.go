package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/extport/internal/config"
	"github.com/specialistvlad/extport/internal/ctxlog"
	"github.com/specialistvlad/extport/internal/port"
	"github.com/specialistvlad/extport/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateExternal converts a decoded external block into the agnostic model.
func translateExternal(ctx context.Context, s *schema.External) (*config.External, error) {
	app, err := config.ParseApplication(s.Application)
	if err != nil {
		return nil, fmt.Errorf("external %q: %w", s.Name, err)
	}

	inputs, err := portListFromExpr(ctx, s.Inputs)
	if err != nil {
		return nil, fmt.Errorf("external %q, inputs: %w", s.Name, err)
	}
	outputs, err := portListFromExpr(ctx, s.Outputs)
	if err != nil {
		return nil, fmt.Errorf("external %q, outputs: %w", s.Name, err)
	}

	label := s.Label
	if label == "" {
		label = s.Name
	}

	ext := &config.External{
		Name:        s.Name,
		Label:       label,
		Application: app,
		Code:        s.Code,
		Options:     s.Options,
		Inputs:      inputs,
		Outputs:     outputs,
	}
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	return ext, nil
}

// portListFromExpr evaluates a port attribute. It accepts either a list of
// declaration strings or a single comma separated string; an absent
// attribute yields an empty list.
func portListFromExpr(ctx context.Context, expr hcl.Expression) (port.List, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%s: port declarations must be known values", expr.Range())
	}

	if val.Type() == cty.String {
		logger.Debug("Parsing port list from string.", "range", expr.Range().String())
		list, err := port.ParseList(val.AsString())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", expr.Range(), err)
		}
		return list, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("%s: expected a string or a list of strings, got %s", expr.Range(), val.Type().FriendlyName())
	}
	var decls []string
	if err := gocty.FromCtyValue(listVal, &decls); err != nil {
		return nil, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	logger.Debug("Parsing port list from list.", "range", expr.Range().String(), "count", len(decls))

	list, err := port.ParseDeclarations(decls)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	return list, nil
}
