package tmpl

import (
	"fmt"

	"github.com/specialistvlad/extport/internal/port"
	"github.com/zclconf/go-cty/cty"
)

// keys lists every attribute key probed when converting a lookup. Keys the
// lookup does not know are left out of the resulting object.
var keys = []string{
	"name",
	"label",
	"application",
	"code",
	"options",
	"inputs",
	"outputs",
	"bits",
	"type",
	"size",
	"ports",
}

// ToCty converts an attribute lookup into a cty object holding every probed
// key the lookup reports as present. Ports use their own cty form.
func ToCty(a port.Attributes) (cty.Value, error) {
	if p, ok := a.(port.Port); ok {
		return p.CtyValue(), nil
	}
	attrs := make(map[string]cty.Value)
	for _, key := range keys {
		raw, ok := a.Get(key)
		if !ok {
			continue
		}
		v, err := valueToCty(raw)
		if err != nil {
			return cty.NilVal, fmt.Errorf("attribute %q: %w", key, err)
		}
		attrs[key] = v
	}
	return cty.ObjectVal(attrs), nil
}

func valueToCty(raw any) (cty.Value, error) {
	switch v := raw.(type) {
	case string:
		return cty.StringVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case bool:
		return cty.BoolVal(v), nil
	case port.Attributes:
		return ToCty(v)
	case []port.Attributes:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(v))
		for i, elem := range v {
			ev, err := ToCty(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = ev
		}
		return cty.TupleVal(elems), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported attribute value of type %T", raw)
	}
}
