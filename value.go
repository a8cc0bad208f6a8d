package asciijson

// Scalar is the closed set of value categories the writer encodes directly:
// the signed and unsigned integer widths, both float widths, bool, string,
// []byte (nil encodes as null) and the tagged Number. Passing any other type
// to WriteValue or WriteKeyValue is a compile error, not a runtime one.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool | string | []byte | Number
}

// WriteValue writes v as the next value: at an empty root, as an array
// element, or as the value of a pending key.
func WriteValue[T Scalar](w *Writer, v T) error {
	if err := checkFinite(v); err != nil {
		return err
	}
	return w.value(func() error { return emitScalar(&w.raw, v) })
}

// WriteKeyValue writes a key-value pair inside an object. Unlike a WriteKey
// followed by a value write, a failure here never leaves a dangling key node.
func WriteKeyValue[T Scalar](w *Writer, key string, v T) error {
	return writeKeyValue(w, func() error { return w.raw.String(key) }, v)
}

// WriteKeyValueBytes is WriteKeyValue with a byte-slice key. A nil key is
// not legal.
func WriteKeyValueBytes[T Scalar](w *Writer, key []byte, v T) error {
	if key == nil {
		return ErrNullKey
	}
	return writeKeyValue(w, func() error { return w.raw.StringBytes(key) }, v)
}

func writeKeyValue[T Scalar](w *Writer, emitKey func() error, v T) error {
	if err := checkFinite(v); err != nil {
		return err
	}
	if w.top().kind != ObjectNode {
		return &StructureError{Op: "write key", Parent: w.top().kind}
	}
	if w.top().hasChildren {
		if err := w.raw.ItemSeparator(); err != nil {
			return err
		}
	}
	if err := emitKey(); err != nil {
		return err
	}
	if err := w.raw.KeySeparator(); err != nil {
		return err
	}
	if err := emitScalar(&w.raw, v); err != nil {
		return err
	}
	w.top().hasChildren = true
	return nil
}

// checkFinite rejects non-finite floats before any byte is emitted.
func checkFinite[T Scalar](v T) error {
	switch v := any(v).(type) {
	case float32:
		if !isFinite(float64(v)) {
			return ErrNonFinite
		}
	case float64:
		if !isFinite(v) {
			return ErrNonFinite
		}
	case Number:
		if !v.IsFinite() {
			return ErrNonFinite
		}
	}
	return nil
}

// emitScalar dispatches v to the raw routine for its category. The switch is
// exhaustive over the Scalar type set.
func emitScalar[T Scalar](w *RawWriter, v T) error {
	switch v := any(v).(type) {
	case int:
		return w.Int(int64(v))
	case int8:
		return w.Int(int64(v))
	case int16:
		return w.Int(int64(v))
	case int32:
		return w.Int(int64(v))
	case int64:
		return w.Int(v)
	case uint:
		return w.Uint(uint64(v))
	case uint8:
		return w.Uint(uint64(v))
	case uint16:
		return w.Uint(uint64(v))
	case uint32:
		return w.Uint(uint64(v))
	case uint64:
		return w.Uint(v)
	case float32:
		return w.Float32(v)
	case float64:
		return w.Float64(v)
	case bool:
		return w.Bool(v)
	case string:
		return w.String(v)
	case []byte:
		return w.StringBytes(v)
	case Number:
		return w.Number(v)
	}
	panic("asciijson: unreachable scalar category")
}
