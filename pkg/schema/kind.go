package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/NVIDIA/nagcfg/pkg/errors"
)

// Kind is the declared value type of an option.
type Kind string

// Supported option kinds.
const (
	KindInt        Kind = "int"
	KindFloat      Kind = "float"
	KindString     Kind = "string"
	KindStringList Kind = "list"
	KindEnum       Kind = "enum"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindInt:
		return KindInt, nil
	case KindFloat:
		return KindFloat, nil
	case KindString:
		return KindString, nil
	case KindStringList:
		return KindStringList, nil
	case KindEnum:
		return KindEnum, nil
	default:
		return "", fmt.Errorf("invalid option kind: %q", s)
	}
}

// TypeName describes the runtime type of a raw parameter value in the terms
// used by TypeMismatch errors.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	case json.Number:
		return "number"
	case []string, []any:
		return "list"
	case map[string]any, map[any]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Normalize checks v against the option kind and converts it to the canonical
// representation: int64, float64, string or []string. A mismatch returns a
// TYPE_MISMATCH structured error.
func (o OptionSpec) Normalize(v any) (any, error) {
	switch o.Kind {
	case KindInt:
		if n, ok := toInt64(v); ok {
			return n, nil
		}
	case KindFloat:
		if f, ok := toFloat64(v); ok {
			return f, nil
		}
	case KindString:
		if s, ok := v.(string); ok {
			if err := o.checkLine(s); err != nil {
				return nil, err
			}
			return s, nil
		}
	case KindStringList:
		if l, ok := toStringList(v); ok {
			for _, item := range l {
				if err := o.checkLine(item); err != nil {
					return nil, err
				}
				if strings.Contains(item, listSeparator) {
					return nil, errors.TypeMismatch(o.Name, o.expected(), "list item with comma")
				}
			}
			return l, nil
		}
	case KindEnum:
		s, ok := v.(string)
		if !ok {
			break
		}
		if err := o.checkLine(s); err != nil {
			return nil, err
		}
		for _, a := range o.Allowed {
			if s == a {
				return s, nil
			}
		}
		return nil, errors.TypeMismatch(o.Name, o.expected(), fmt.Sprintf("string %q", s))
	}
	return nil, errors.TypeMismatch(o.Name, o.expected(), describe(v))
}

// listSeparator joins list items on one rendered line.
const listSeparator = ","

// checkLine rejects values that would split a rendered key=value line.
func (o OptionSpec) checkLine(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return errors.TypeMismatch(o.Name, o.expected(), "string with newline")
	}
	return nil
}

func (o OptionSpec) expected() string {
	if o.Kind == KindEnum {
		return fmt.Sprintf("enum(%s)", strings.Join(o.Allowed, "|"))
	}
	return o.Kind.String()
}

func describe(v any) string {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Sprintf("float %v", x)
		}
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return fmt.Sprintf("float %v", x)
		}
	}
	return TypeName(v)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func toFloat64(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		x, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	default:
		i, ok := toInt64(v)
		if !ok {
			return 0, false
		}
		f = float64(i)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toStringList(v any) ([]string, bool) {
	switch l := v.(type) {
	case []string:
		out := make([]string, len(l))
		copy(out, l)
		return out, true
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
