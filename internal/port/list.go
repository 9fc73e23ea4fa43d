package port

import (
	"fmt"
	"strings"
)

// listSeparator splits the entries of a port list.
const listSeparator = ","

// Attribute keys understood by List.Get.
const (
	KeySize  = "size"
	KeyPorts = "ports"
)

// List is an ordered set of ports with unique names.
type List []Port

var _ Attributes = List(nil)

// ParseList reads a comma separated list of declarations. Blank entries are
// skipped.
func ParseList(s string) (List, error) {
	return ParseDeclarations(strings.Split(s, listSeparator))
}

// ParseDeclarations parses each declaration in order. Surrounding blanks are
// trimmed and blank entries are skipped.
func ParseDeclarations(decls []string) (List, error) {
	list := make(List, 0, len(decls))
	seen := make(map[string]int, len(decls))

	for i, decl := range decls {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		p, err := Parse(decl)
		if err != nil {
			return nil, fmt.Errorf("port %d (%q): %w", i+1, decl, err)
		}
		if prev, dup := seen[p.name]; dup {
			return nil, &ConfigError{Msg: fmt.Sprintf("duplicate port name %q (entries %d and %d)", p.name, prev, i+1)}
		}
		seen[p.name] = i + 1
		list = append(list, p)
	}
	return list, nil
}

// Bits returns the sum of all port widths.
func (l List) Bits() int {
	total := 0
	for _, p := range l {
		total += p.bits
	}
	return total
}

// Lookup finds a port by name.
func (l List) Lookup(name string) (Port, bool) {
	for _, p := range l {
		if p.name == name {
			return p, true
		}
	}
	return Port{}, false
}

// String joins the short forms of all ports with commas.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, p := range l {
		parts[i] = p.String()
	}
	return strings.Join(parts, listSeparator)
}

// Get implements Attributes. The ports key yields the entries as Attributes.
func (l List) Get(key string) (any, bool) {
	switch key {
	case KeySize:
		return len(l), true
	case KeyBits:
		return l.Bits(), true
	case KeyPorts:
		attrs := make([]Attributes, len(l))
		for i, p := range l {
			attrs[i] = p
		}
		return attrs, true
	default:
		return nil, false
	}
}
