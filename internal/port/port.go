package port

import (
	"fmt"
	"math"
	"strings"

	"github.com/specialistvlad/extport/internal/numlit"
	"github.com/zclconf/go-cty/cty"
)

// separator splits the fields of a declaration.
const separator = ":"

// Attributes is the read-only lookup used by template consumers. Unknown
// keys report false rather than an error.
type Attributes interface {
	Get(key string) (any, bool)
}

// Attribute keys understood by Port.Get.
const (
	KeyName = "name"
	KeyBits = "bits"
	KeyType = "type"
)

// Port is an immutable description of one signal.
type Port struct {
	name string
	bits int
	kind Kind
}

var _ Attributes = Port{}

// New builds a port from explicit values.
func New(name string, kind Kind, bits int) (Port, error) {
	if !kind.Valid() {
		return Port{}, &UnknownTypeError{Token: fmt.Sprintf("kind(%d)", int(kind))}
	}
	p := Port{name: name, bits: bits, kind: kind}
	if err := p.validate(); err != nil {
		return Port{}, err
	}
	return p, nil
}

// Parse reads a declaration of the form name[:width[:type]]. Empty trailing
// fields are dropped and tokens after the type are ignored.
func Parse(declaration string) (Port, error) {
	tokens := strings.Split(declaration, separator)
	for len(tokens) > 1 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	p := Port{name: tokens[0], bits: 1}

	if len(tokens) > 1 {
		v, err := numlit.Decode(tokens[1])
		if err != nil {
			return Port{}, &FormatError{Token: tokens[1], Err: err}
		}
		if v == 0 || v > math.MaxInt {
			return Port{}, &ConfigError{Msg: fmt.Sprintf("bit length of port %q must be a positive int, got %s", p.name, tokens[1])}
		}
		p.bits = int(v)
	}

	if len(tokens) > 2 {
		kind, ok := KindFromKeyword(tokens[2])
		if !ok {
			return Port{}, &UnknownTypeError{Token: tokens[2]}
		}
		p.kind = kind
	} else if p.bits == 1 {
		p.kind = SingleBit
	} else {
		p.kind = BitVector
	}

	if err := p.validate(); err != nil {
		return Port{}, err
	}
	return p, nil
}

// MustParse is like Parse but panics if the declaration is invalid.
func MustParse(declaration string) Port {
	p, err := Parse(declaration)
	if err != nil {
		panic(fmt.Sprintf("port: Parse(%q): %v", declaration, err))
	}
	return p
}

func (p Port) validate() error {
	if p.name == "" {
		return &ConfigError{Msg: "port name must not be empty"}
	}
	if p.bits < 1 {
		return &ConfigError{Msg: fmt.Sprintf("bit length of port %q must be at least 1, got %d", p.name, p.bits)}
	}
	if p.kind == SingleBit && p.bits != 1 {
		return &ConfigError{Msg: "std_logic port must have 1 bit"}
	}
	return nil
}

// Name returns the port name.
func (p Port) Name() string { return p.name }

// Bits returns the bit width.
func (p Port) Bits() int { return p.bits }

// Kind returns the port kind.
func (p Port) Kind() Kind { return p.kind }

// String returns the short form: the name alone for single bit ports,
// name:bits otherwise. The kind is not part of the short form, so parsing it
// again infers the default kind for the width.
func (p Port) String() string {
	if p.bits == 1 {
		return p.name
	}
	return fmt.Sprintf("%s%s%d", p.name, separator, p.bits)
}

// Declaration returns the full name:bits:type form, which parses back to an
// equal port.
func (p Port) Declaration() string {
	return fmt.Sprintf("%s%s%d%s%s", p.name, separator, p.bits, separator, p.kind)
}

// Get implements Attributes. A zero Port reports every key as absent.
func (p Port) Get(key string) (any, bool) {
	if !p.kind.Valid() {
		return nil, false
	}
	switch key {
	case KeyName:
		return p.name, true
	case KeyBits:
		return p.bits, true
	case KeyType:
		return p.kind.Code(), true
	default:
		return nil, false
	}
}

// CtyValue returns the port attributes as an object value for HCL
// evaluation contexts. A zero Port yields an empty object.
func (p Port) CtyValue() cty.Value {
	if !p.kind.Valid() {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(map[string]cty.Value{
		KeyName: cty.StringVal(p.name),
		KeyBits: cty.NumberIntVal(int64(p.bits)),
		KeyType: cty.NumberIntVal(int64(p.kind.Code())),
	})
}
