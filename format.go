package asciijson

import (
	"math"
	"strconv"
)

// Fixed capacities for the local formatting buffers, sized by the widest
// decimal text each value width can produce.
const (
	maxUintChars  = 20 // len("18446744073709551615")
	maxIntChars   = 20 // len("-9223372036854775808")
	maxFloatChars = 32 // shortest round-trip float64 with sign and exponent
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// fillDigits fills buf from the end with the decimal digits of u, units
// first, and returns the index of the leading digit. Zero produces "0".
func fillDigits(buf []byte, u uint64) int {
	i := len(buf)
	for {
		i--
		buf[i] = '0' + byte(u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	return i
}

// Uint writes the canonical decimal form of v.
func (w *RawWriter) Uint(v uint64) error {
	var buf [maxUintChars]byte
	i := fillDigits(buf[:], v)
	_, err := w.sink.Write(buf[i:])
	return err
}

// Int writes the canonical decimal form of v. Zero is written without a sign.
func (w *RawWriter) Int(v int64) error {
	var buf [maxIntChars]byte
	u := uint64(v)
	if v < 0 {
		// unsigned negation is exact even for math.MinInt64
		u = -u
	}
	i := fillDigits(buf[:], u)
	if v < 0 {
		i--
		buf[i] = '-'
	}
	_, err := w.sink.Write(buf[i:])
	return err
}

// Float32 writes the shortest decimal text that parses back to exactly v.
func (w *RawWriter) Float32(v float32) error {
	return w.putFloat(float64(v), 32)
}

// Float64 writes the shortest decimal text that parses back to exactly v.
func (w *RawWriter) Float64(v float64) error {
	return w.putFloat(v, 64)
}

func (w *RawWriter) putFloat(v float64, bits int) error {
	if !isFinite(v) {
		return ErrNonFinite
	}
	// strconv is locale-independent: the decimal point is always '.'.
	var buf [maxFloatChars]byte
	out := strconv.AppendFloat(buf[:0], v, 'g', -1, bits)
	_, err := w.sink.Write(out)
	return err
}

// Number dispatches on the active representation of v.
func (w *RawWriter) Number(v Number) error {
	switch v.Kind() {
	case IntKind:
		return w.Int(v.Int64())
	case UintKind:
		return w.Uint(v.Uint64())
	case Float32Kind:
		return w.Float32(v.Float32())
	case Float64Kind:
		return w.Float64(v.Float64())
	}
	panic("asciijson: Number with invalid kind")
}
