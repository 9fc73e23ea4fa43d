package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/extport/internal/ctxlog"
	"github.com/specialistvlad/extport/internal/tmpl"
)

// Run writes one entry per external component, ordered by name: either the
// rendered template or a summary of its ports.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var src string
	if a.config.TemplatePath != "" {
		b, err := os.ReadFile(a.config.TemplatePath)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
		src = string(b)
		a.logger.Debug("Template loaded.", "path", a.config.TemplatePath)
	}

	externals := a.model.Sorted()
	if len(externals) == 0 {
		a.logger.Warn("No external components configured.")
		return nil
	}

	for _, ext := range externals {
		if src == "" {
			if _, err := fmt.Fprintf(a.outW, "%s: inputs=%s outputs=%s\n", ext.Name, ext.Inputs, ext.Outputs); err != nil {
				return err
			}
			continue
		}

		out, err := tmpl.Render(ctx, a.config.TemplatePath, src, ext)
		if err != nil {
			return fmt.Errorf("external %q: %w", ext.Name, err)
		}
		if _, err := fmt.Fprintln(a.outW, out); err != nil {
			return err
		}
	}

	a.logger.Info("Externals processed.", "count", len(externals))
	return nil
}
