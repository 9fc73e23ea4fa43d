package port

// Kind classifies a port. The declared order defines the numeric code
// reported to templates, so new kinds may only be appended.
type Kind int

const (
	// SingleBit is one logic bit (std_logic).
	SingleBit Kind = iota + 1
	// BitVector is a vector of logic bits (std_logic_vector).
	BitVector
	// UnsignedNumber is a bit vector interpreted as a number (unsigned).
	UnsignedNumber
)

// KindFromKeyword maps a type keyword of the declaration grammar to a Kind.
func KindFromKeyword(keyword string) (Kind, bool) {
	switch keyword {
	case "std_logic":
		return SingleBit, true
	case "std_logic_vector":
		return BitVector, true
	case "unsigned":
		return UnsignedNumber, true
	default:
		return 0, false
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case SingleBit, BitVector, UnsignedNumber:
		return true
	default:
		return false
	}
}

// Code returns the 1-based code of the kind.
func (k Kind) Code() int {
	return int(k)
}

// String returns the type keyword used in declarations.
func (k Kind) String() string {
	switch k {
	case SingleBit:
		return "std_logic"
	case BitVector:
		return "std_logic_vector"
	case UnsignedNumber:
		return "unsigned"
	default:
		return "invalid"
	}
}
