// Package config defines the format-agnostic model of an external
// co-simulation setup: the external components, the process that executes
// each of them, and their validated input and output ports.
//
// Concrete loaders, such as the HCL one in package hcl, translate their own
// syntax into this model. Everything downstream (the app, the template
// bridge) depends only on the types defined here.
package config
