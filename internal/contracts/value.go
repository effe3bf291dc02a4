package contracts

import (
	"bytes"
	"encoding/json"
	"math"
)

// Value is a float64 that can be undefined. Indicator and ratio code
// returns an undefined Value when inputs are missing or the math does
// not apply (division by zero, not enough samples). A defined Value is
// always finite.
type Value struct {
	val float64
	ok  bool
}

// Defined wraps v. NaN and infinities collapse to undefined so a defined
// Value never carries a non-finite number.
func Defined(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{val: v, ok: true}
}

// Undefined returns the undefined Value.
func Undefined() Value {
	return Value{}
}

// IsDefined reports whether the value carries a number.
func (v Value) IsDefined() bool { return v.ok }

// Float returns the carried number and whether it is defined.
func (v Value) Float() (float64, bool) { return v.val, v.ok }

// Or returns the carried number, or fallback when undefined.
func (v Value) Or(fallback float64) float64 {
	if v.ok {
		return v.val
	}
	return fallback
}

// Round returns the value rounded to the given number of decimal places.
// Undefined stays undefined.
func (v Value) Round(places int) Value {
	if !v.ok {
		return v
	}
	pow := math.Pow(10, float64(places))
	return Defined(math.Round(v.val*pow) / pow)
}

var jsonNull = []byte("null")

// MarshalJSON encodes the value as a JSON number, or null when undefined.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return jsonNull, nil
	}
	return json.Marshal(v.val)
}

// UnmarshalJSON decodes a JSON number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*v = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Defined(f)
	return nil
}
