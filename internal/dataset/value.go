package dataset

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "null"
	}
}

// Value is a single cell: Null, Number or Text. Values are comparable, and
// equality is kind-aware, so Number(5) and Text("5") are distinct.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Null returns the empty cell value.
func Null() Value { return Value{} }

// Number wraps a float. NaN is not a valid cell value and becomes Null.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Float returns the numeric payload; ok is false for Null and Text.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String renders the value the way it is shown to users and used as a
// grouping key: numbers in shortest round-trip form, Null as "null".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num)
	case KindText:
		return v.text
	default:
		return "null"
	}
}

// MarshalJSON encodes Null as null, Number as a JSON number and Text as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsInf(v.num, 0) {
			return json.Marshal(FormatNumber(v.num))
		}
		return []byte(FormatNumber(v.num)), nil
	case KindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// FormatNumber renders f in shortest form, switching to exponent notation
// outside [1e-6, 1e21) like browser number formatting does.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits ("1e-07").
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseNumber reports whether s, already trimmed, is an entirely numeric
// literal: decimal with optional sign, fraction and exponent, Infinity, or
// an unsigned 0x/0o/0b integer literal.
func ParseNumber(s string) (float64, bool) {
	switch s {
	case "":
		return 0, false
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if s[2] == '+' || s[2] == '-' {
				return 0, false
			}
			n, ok := new(big.Int).SetString(s[2:], base)
			if !ok {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f, true
		}
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals saturate to ±Inf or 0 instead of failing.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// Coerce converts one raw field into a cell: trimmed, empty becomes Null,
// numeric literals become Number, everything else stays Text.
func Coerce(field string) Value {
	v := strings.TrimSpace(field)
	if v == "" {
		return Null()
	}
	if f, ok := ParseNumber(v); ok {
		return Number(f)
	}
	return Text(v)
}
