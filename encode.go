package asciijson

import "fmt"

// Encode streams v through w as a single JSON value. Document values become
// objects in entry order, Array values become arrays in slice order, nil
// becomes null, and scalars cover the Scalar categories. Any other type is
// reported as an error at the call site.
//
// Encode drives the same grammar-checked operations a caller would, so a
// malformed graph (for example a Document nested where the writer already
// holds a completed root) fails with the usual structural errors.
func Encode(w *Writer, v any) error {
	switch v := v.(type) {
	case nil:
		return w.WriteNull()
	case Document:
		return encodeDocument(w, v)
	case Array:
		return encodeArray(w, v)
	case string:
		return WriteValue(w, v)
	case []byte:
		return WriteValue(w, v)
	case bool:
		return WriteValue(w, v)
	case int:
		return WriteValue(w, v)
	case int8:
		return WriteValue(w, v)
	case int16:
		return WriteValue(w, v)
	case int32:
		return WriteValue(w, v)
	case int64:
		return WriteValue(w, v)
	case uint:
		return WriteValue(w, v)
	case uint8:
		return WriteValue(w, v)
	case uint16:
		return WriteValue(w, v)
	case uint32:
		return WriteValue(w, v)
	case uint64:
		return WriteValue(w, v)
	case float32:
		return WriteValue(w, v)
	case float64:
		return WriteValue(w, v)
	case Number:
		return WriteValue(w, v)
	}
	return fmt.Errorf("asciijson: cannot encode value of type %T", v)
}

func encodeDocument(w *Writer, d Document) error {
	if err := w.StartObject(); err != nil {
		return err
	}
	for _, e := range d {
		if err := w.WriteKey(e.Key); err != nil {
			return fmt.Errorf("write key %q: %w", e.Key, err)
		}
		if err := Encode(w, e.Value); err != nil {
			return fmt.Errorf("write value for key %q: %w", e.Key, err)
		}
	}
	return w.EndObject()
}

func encodeArray(w *Writer, a Array) error {
	if err := w.StartArray(); err != nil {
		return err
	}
	for i, elem := range a {
		if err := Encode(w, elem); err != nil {
			return fmt.Errorf("write element %d: %w", i, err)
		}
	}
	return w.EndArray()
}
