package scoring

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the raw value types an attribute map can carry.
type ValueKind int

const (
	// KindAbsent marks a value that was never supplied. The normalizer
	// scores it at the scale midpoint and sets the missing-data flag.
	KindAbsent ValueKind = iota
	// KindNumber is a numeric raw value (price, index, rating).
	KindNumber
	// KindBool is a boolean raw value (has-pool, has-garage).
	KindBool
	// KindCategory is a category code (flood zone class).
	KindCategory
)

// Value is one raw attribute value. The zero Value is absent.
type Value struct {
	kind ValueKind
	num  float64
	b    bool
	cat  string
}

// Number wraps a numeric raw value.
func Number(v float64) Value { return Value{kind: KindNumber, num: v} }

// Boolean wraps a boolean raw value.
func Boolean(v bool) Value { return Value{kind: KindBool, b: v} }

// Category wraps a category-code raw value.
func CategoryCode(code string) Value { return Value{kind: KindCategory, cat: code} }

// Kind returns the value's discriminator.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether no value was supplied.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Float returns the numeric payload. Only meaningful for KindNumber.
func (v Value) Float() float64 { return v.num }

// Bool returns the boolean payload. Only meaningful for KindBool.
func (v Value) Bool() bool { return v.b }

// Code returns the category payload. Only meaningful for KindCategory.
func (v Value) Code() string { return v.cat }

// MarshalJSON renders the value as its natural JSON type; absent values
// render as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindCategory:
		return json.Marshal(v.cat)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON number, boolean, string or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch typed := raw.(type) {
	case nil:
		*v = Value{}
	case float64:
		*v = Number(typed)
	case bool:
		*v = Boolean(typed)
	case string:
		*v = CategoryCode(typed)
	default:
		return fmt.Errorf("attribute value must be a number, boolean or string, got %T", raw)
	}
	return nil
}

// AttributeMap carries the raw per-entity input for one scoring call, keyed
// by factor id. It is supplied fresh per call; the engine never retains it.
type AttributeMap map[string]Value
