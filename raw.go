package asciijson

// RawWriter emits JSON lexical tokens unconditionally: no node stack, no
// grammar checking. Callers are responsible for ordering and separators;
// Writer layers that on top.
type RawWriter struct {
	sink Sink
}

// NewRawWriter returns a token emitter writing to sink.
func NewRawWriter(sink Sink) *RawWriter { return &RawWriter{sink: sink} }

func (w *RawWriter) StartObject() error   { return w.sink.WriteByte('{') }
func (w *RawWriter) EndObject() error     { return w.sink.WriteByte('}') }
func (w *RawWriter) StartArray() error    { return w.sink.WriteByte('[') }
func (w *RawWriter) EndArray() error      { return w.sink.WriteByte(']') }
func (w *RawWriter) KeySeparator() error  { return w.sink.WriteByte(':') }
func (w *RawWriter) ItemSeparator() error { return w.sink.WriteByte(',') }

func (w *RawWriter) Bool(v bool) error {
	if v {
		_, err := w.sink.WriteString("true")
		return err
	}
	_, err := w.sink.WriteString("false")
	return err
}

func (w *RawWriter) Null() error {
	_, err := w.sink.WriteString("null")
	return err
}

// String writes v as a quoted, escaped JSON string.
func (w *RawWriter) String(v string) error { return w.escapeString(v, true) }

// StringBytes writes v as a quoted, escaped JSON string. A nil slice is
// written as null.
func (w *RawWriter) StringBytes(v []byte) error {
	if v == nil {
		return w.Null()
	}
	return w.escapeBytes(v, true)
}

// UnquotedString writes v escaped but without surrounding quotes, for
// callers splicing pre-formatted fragments into a string of their own.
func (w *RawWriter) UnquotedString(v string) error { return w.escapeString(v, false) }

// Newline writes a single '\n'.
func (w *RawWriter) Newline() error { return w.sink.WriteByte('\n') }

// Whitespace writes n space characters.
func (w *RawWriter) Whitespace(n int) error {
	for ; n > 0; n-- {
		if err := w.sink.WriteByte(' '); err != nil {
			return err
		}
	}
	return nil
}

// Sink returns the underlying sink.
func (w *RawWriter) Sink() Sink { return w.sink }
