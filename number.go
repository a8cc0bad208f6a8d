package asciijson

import "math"

// NumberKind identifies which representation a Number carries.
type NumberKind uint8

const (
	IntKind NumberKind = iota
	UintKind
	Float32Kind
	Float64Kind
)

func (k NumberKind) String() string {
	switch k {
	case IntKind:
		return "Int"
	case UintKind:
		return "Uint"
	case Float32Kind:
		return "Float32"
	case Float64Kind:
		return "Float64"
	}
	return "<unknown kind>"
}

// Number is a tagged numeric value: exactly one of a 64-bit signed integer, a
// 64-bit unsigned integer, or a 32/64-bit float, with a discriminant naming
// which. The writer only reads the active representation; a Number is never
// mutated. The zero value is the integer 0.
type Number struct {
	kind NumberKind
	bits uint64
}

// Int returns a Number holding a signed integer.
func Int(v int64) Number { return Number{kind: IntKind, bits: uint64(v)} }

// Uint returns a Number holding an unsigned integer.
func Uint(v uint64) Number { return Number{kind: UintKind, bits: v} }

// Float32 returns a Number holding a 32-bit float.
func Float32(v float32) Number {
	return Number{kind: Float32Kind, bits: uint64(math.Float32bits(v))}
}

// Float64 returns a Number holding a 64-bit float.
func Float64(v float64) Number {
	return Number{kind: Float64Kind, bits: math.Float64bits(v)}
}

// Kind reports the active representation.
func (n Number) Kind() NumberKind { return n.kind }

// Int64 returns the signed integer value. Only meaningful when Kind is
// IntKind.
func (n Number) Int64() int64 { return int64(n.bits) }

// Uint64 returns the unsigned integer value. Only meaningful when Kind is
// UintKind.
func (n Number) Uint64() uint64 { return n.bits }

// Float32 returns the 32-bit float value. Only meaningful when Kind is
// Float32Kind.
func (n Number) Float32() float32 { return math.Float32frombits(uint32(n.bits)) }

// Float64 returns the 64-bit float value. Only meaningful when Kind is
// Float64Kind.
func (n Number) Float64() float64 { return math.Float64frombits(n.bits) }

// IsFinite reports whether n can be encoded as a JSON number. Integer kinds
// are always finite.
func (n Number) IsFinite() bool {
	switch n.kind {
	case Float32Kind:
		return isFinite(float64(n.Float32()))
	case Float64Kind:
		return isFinite(n.Float64())
	}
	return true
}
