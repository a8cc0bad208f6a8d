// Package asciijson implements a streaming, forward-only JSON text encoder.
//
// The package is layered. A Sink accepts bytes and tracks the output
// position. A RawWriter turns scalar values into JSON lexical tokens with no
// grammar checking. A Writer tracks the document structure on a node stack,
// inserts the separators the grammar requires, and rejects any operation that
// would produce invalid JSON given everything written so far.
//
// Output is strict JSON text: double-quoted escaped strings, canonical
// decimal numbers with '.' as the decimal point regardless of host locale,
// and the literals true, false and null. No whitespace is emitted
// automatically; WriteNewline and WriteWhitespace exist so callers can drive
// their own layout.
//
// A Writer is not safe for concurrent use. Use one writer per output stream.
package asciijson
