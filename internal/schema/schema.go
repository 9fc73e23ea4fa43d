// Package schema holds the gohcl decoding targets for configuration files.
package schema

import "github.com/hashicorp/hcl/v2"

// External represents an `external` block: one component computed by an
// external process.
type External struct {
	Name        string         `hcl:"name,label"`
	Label       string         `hcl:"label,optional"`
	Application string         `hcl:"application,optional"`
	Code        string         `hcl:"code,optional"`
	Options     string         `hcl:"options,optional"`
	Inputs      hcl.Expression `hcl:"inputs,optional"`
	Outputs     hcl.Expression `hcl:"outputs,optional"`
}

// File represents the top-level structure of a configuration file.
type File struct {
	Externals []*External `hcl:"external,block"`
	Remain    hcl.Body    `hcl:",remain"`
}
