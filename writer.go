package asciijson

import "io"

// NodeKind identifies the grammatical context a document node represents.
type NodeKind uint8

const (
	RootNode NodeKind = iota
	ObjectNode
	ArrayNode
	KeyNode
)

func (k NodeKind) String() string {
	switch k {
	case RootNode:
		return "Root"
	case ObjectNode:
		return "Object"
	case ArrayNode:
		return "Array"
	case KeyNode:
		return "Key"
	}
	return "<unknown node>"
}

// node is one entry of the writer's structural stack. hasChildren becomes
// true the first time a child of the node completes; later siblings then owe
// a leading separator.
type node struct {
	kind        NodeKind
	hasChildren bool
}

// Writer enforces JSON grammar over a RawWriter. It keeps a stack of open
// document nodes, seeded with a single root entry that is never popped, and
// rejects any operation the current top node forbids. Every validation runs
// before any byte of the rejected call reaches the sink.
//
// After an error the writer's state and the sink's contents are left exactly
// as they were at the point of failure; issuing further writes against the
// same writer is unsupported. There is no implicit teardown flush: call Close.
type Writer struct {
	raw   RawWriter
	nodes []node
}

// NewWriter returns a writer emitting into sink. The writer owns its node
// stack exclusively and is not safe for concurrent use; instantiate one
// writer per output stream.
func NewWriter(sink Sink) *Writer {
	w := &Writer{raw: RawWriter{sink: sink}}
	w.nodes = append(make([]node, 0, 8), node{kind: RootNode})
	return w
}

func (w *Writer) top() *node { return &w.nodes[len(w.nodes)-1] }

// ParentNode reports the node currently open: ObjectNode after StartObject
// until the matching EndObject, KeyNode between WriteKey and its value, and
// RootNode outside any container.
func (w *Writer) ParentNode() NodeKind { return w.top().kind }

// Outpos reports the sink position.
func (w *Writer) Outpos() int64 { return w.raw.sink.Outpos() }

// checkValue reports whether a value, or the opening of a container, may be
// written under the current top node.
func (w *Writer) checkValue(op string) error {
	t := w.top()
	switch t.kind {
	case RootNode:
		if t.hasChildren {
			return ErrMultiRoot
		}
		return nil
	case ArrayNode, KeyNode:
		return nil
	}
	return &StructureError{Op: op, Parent: t.kind}
}

// separator emits the comma or colon owed before the next token, if any.
func (w *Writer) separator() error {
	t := w.top()
	if t.hasChildren {
		return w.raw.ItemSeparator()
	}
	// a key node is popped before it can ever have children
	if t.kind == KeyNode {
		return w.raw.KeySeparator()
	}
	return nil
}

// childDone records that a child of the current context completed. The value
// half of a key-value pair also pops its key; the parent is then marked so
// the next sibling owes a separator.
func (w *Writer) childDone() {
	if w.top().kind == KeyNode {
		w.nodes = w.nodes[:len(w.nodes)-1]
	}
	w.top().hasChildren = true
}

func (w *Writer) startNode(kind NodeKind, op string) error {
	if err := w.checkValue(op); err != nil {
		return err
	}
	if err := w.separator(); err != nil {
		return err
	}
	var err error
	if kind == ObjectNode {
		err = w.raw.StartObject()
	} else {
		err = w.raw.StartArray()
	}
	if err != nil {
		return err
	}
	w.nodes = append(w.nodes, node{kind: kind})
	return nil
}

func (w *Writer) endNode(kind NodeKind, op string) error {
	if w.top().kind != kind {
		return &StructureError{Op: op, Parent: w.top().kind}
	}
	var err error
	if kind == ObjectNode {
		err = w.raw.EndObject()
	} else {
		err = w.raw.EndArray()
	}
	if err != nil {
		return err
	}
	w.nodes = w.nodes[:len(w.nodes)-1]
	w.childDone()
	return nil
}

// StartObject opens an object. Legal at an empty root, inside an array, or
// as the value of a pending key.
func (w *Writer) StartObject() error { return w.startNode(ObjectNode, "start object") }

// EndObject closes the innermost open object.
func (w *Writer) EndObject() error { return w.endNode(ObjectNode, "end object") }

// StartArray opens an array. Legal in the same positions as StartObject.
func (w *Writer) StartArray() error { return w.startNode(ArrayNode, "start array") }

// EndArray closes the innermost open array.
func (w *Writer) EndArray() error { return w.endNode(ArrayNode, "end array") }

// WriteKey writes an object key. The next write must supply its value; no
// other structural operation may intervene.
func (w *Writer) WriteKey(key string) error {
	return w.key(func() error { return w.raw.String(key) })
}

// WriteKeyBytes writes an object key from a byte slice. A nil slice is not a
// legal key.
func (w *Writer) WriteKeyBytes(key []byte) error {
	if key == nil {
		return ErrNullKey
	}
	return w.key(func() error { return w.raw.StringBytes(key) })
}

func (w *Writer) key(emit func() error) error {
	if w.top().kind != ObjectNode {
		return &StructureError{Op: "write key", Parent: w.top().kind}
	}
	if err := w.separator(); err != nil {
		return err
	}
	if err := emit(); err != nil {
		return err
	}
	// the pair stays incomplete until its value arrives
	w.nodes = append(w.nodes, node{kind: KeyNode})
	return nil
}

// value validates, emits any owed separator, emits the token, and completes
// the child.
func (w *Writer) value(emit func() error) error {
	if err := w.checkValue("write value"); err != nil {
		return err
	}
	if err := w.separator(); err != nil {
		return err
	}
	if err := emit(); err != nil {
		return err
	}
	w.childDone()
	return nil
}

// WriteInt writes a signed integer value.
func (w *Writer) WriteInt(v int64) error {
	return w.value(func() error { return w.raw.Int(v) })
}

// WriteUint writes an unsigned integer value.
func (w *Writer) WriteUint(v uint64) error {
	return w.value(func() error { return w.raw.Uint(v) })
}

// WriteFloat32 writes a 32-bit float value. Non-finite values are rejected
// before any byte reaches the sink.
func (w *Writer) WriteFloat32(v float32) error {
	if !isFinite(float64(v)) {
		return ErrNonFinite
	}
	return w.value(func() error { return w.raw.Float32(v) })
}

// WriteFloat64 writes a 64-bit float value. Non-finite values are rejected
// before any byte reaches the sink.
func (w *Writer) WriteFloat64(v float64) error {
	if !isFinite(v) {
		return ErrNonFinite
	}
	return w.value(func() error { return w.raw.Float64(v) })
}

// WriteNumber writes a tagged number value.
func (w *Writer) WriteNumber(v Number) error {
	if !v.IsFinite() {
		return ErrNonFinite
	}
	return w.value(func() error { return w.raw.Number(v) })
}

// WriteBool writes true or false.
func (w *Writer) WriteBool(v bool) error {
	return w.value(func() error { return w.raw.Bool(v) })
}

// WriteString writes a quoted, escaped string value.
func (w *Writer) WriteString(v string) error {
	return w.value(func() error { return w.raw.String(v) })
}

// WriteStringBytes writes a quoted, escaped string value. A nil slice
// encodes as null.
func (w *Writer) WriteStringBytes(v []byte) error {
	return w.value(func() error { return w.raw.StringBytes(v) })
}

// WriteNull writes the null literal.
func (w *Writer) WriteNull() error { return w.value(w.raw.Null) }

// WriteStringFrom streams a one-pass character source as a quoted string
// value. The source is read exactly once and is not restartable; a read
// failure mid-string leaves the output truncated inside the string token.
func (w *Writer) WriteStringFrom(r io.Reader) error {
	return w.value(func() error { return w.raw.StringFrom(r, true) })
}

// WriteNewline writes '\n'. Purely a formatting hook: the writer never emits
// whitespace on its own and the node stack is not consulted.
func (w *Writer) WriteNewline() error { return w.raw.Newline() }

// WriteWhitespace writes n spaces. Indentation strategy is caller-driven.
func (w *Writer) WriteWhitespace(n int) error { return w.raw.Whitespace(n) }

// Flush drains the sink without closing the writer.
func (w *Writer) Flush() error { return w.raw.sink.Flush() }

// Close flushes the sink and reports any failure. Whether the document is
// complete is not validated; that is the caller's responsibility.
func (w *Writer) Close() error { return w.raw.sink.Flush() }

// Raw exposes the underlying token emitter for callers assembling
// pre-formatted fragments. Writes made through it bypass grammar checking
// and are not reflected in the node stack.
func (w *Writer) Raw() *RawWriter { return &w.raw }
