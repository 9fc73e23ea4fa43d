// Package hcl provides the HCL implementation of config.Loader. It parses
// `external` blocks, evaluates their port declarations as cty values and
// translates them into the format-agnostic config model.
package hcl
