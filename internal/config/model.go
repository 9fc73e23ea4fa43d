package config

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/extport/internal/port"
)

// Application identifies the program that executes an external component.
type Application string

const (
	// Generic runs an arbitrary executable speaking the pipe protocol.
	Generic Application = "generic"
	// GHDL compiles and runs VHDL code with ghdl.
	GHDL Application = "ghdl"
	// IVerilog compiles and runs Verilog code with Icarus Verilog.
	IVerilog Application = "iverilog"
)

// ParseApplication maps a configuration keyword to an Application. The
// empty string selects Generic.
func ParseApplication(s string) (Application, error) {
	switch Application(s) {
	case "", Generic:
		return Generic, nil
	case GHDL, IVerilog:
		return Application(s), nil
	default:
		return "", fmt.Errorf("unknown application %q: must be one of %q, %q or %q", s, Generic, GHDL, IVerilog)
	}
}

// Model is the unified representation of all loaded configuration.
type Model struct {
	Externals map[string]*External
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Externals: make(map[string]*External)}
}

// Add registers an external component. Names must be unique.
func (m *Model) Add(e *External) error {
	if _, exists := m.Externals[e.Name]; exists {
		return fmt.Errorf("external %q is defined more than once", e.Name)
	}
	m.Externals[e.Name] = e
	return nil
}

// Sorted returns the externals ordered by name.
func (m *Model) Sorted() []*External {
	names := make([]string, 0, len(m.Externals))
	for name := range m.Externals {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*External, len(names))
	for i, name := range names {
		out[i] = m.Externals[name]
	}
	return out
}

// External is one component whose behavior is computed by an external
// process.
type External struct {
	Name        string
	Label       string
	Application Application
	Code        string
	Options     string
	Inputs      port.List
	Outputs     port.List
}

// Validate checks the cross-port constraints of the component.
func (e *External) Validate() error {
	if len(e.Inputs) == 0 && len(e.Outputs) == 0 {
		return fmt.Errorf("external %q declares no ports", e.Name)
	}
	for _, in := range e.Inputs {
		if _, clash := e.Outputs.Lookup(in.Name()); clash {
			return fmt.Errorf("external %q: port %q is declared as both input and output", e.Name, in.Name())
		}
	}
	return nil
}

// Get exposes the component to template consumers.
func (e *External) Get(key string) (any, bool) {
	switch key {
	case "name":
		return e.Name, true
	case "label":
		return e.Label, true
	case "application":
		return string(e.Application), true
	case "code":
		return e.Code, true
	case "options":
		return e.Options, true
	case "inputs":
		return e.Inputs, true
	case "outputs":
		return e.Outputs, true
	default:
		return nil, false
	}
}

var _ port.Attributes = (*External)(nil)
