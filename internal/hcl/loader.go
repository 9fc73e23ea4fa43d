package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/extport/internal/config"
	"github.com/specialistvlad/extport/internal/ctxlog"
	"github.com/specialistvlad/extport/internal/fsutil"
	"github.com/specialistvlad/extport/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges all external
// blocks into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Externals {
			ext, err := translateExternal(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			if err := model.Add(ext); err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			logger.Debug("Loaded external.", "name", ext.Name, "inputs", ext.Inputs.String(), "outputs", ext.Outputs.String())
		}
	}

	logger.Debug("HCL loading complete.", "externals", len(model.Externals))
	return model, nil
}
