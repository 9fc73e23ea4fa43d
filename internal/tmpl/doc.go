// Package tmpl evaluates HCL templates against attribute lookups. It is the
// bridge between port.Attributes values and code generation: lookups are
// probed key by key and turned into cty values, so templates never see the
// Go structs behind them.
package tmpl
