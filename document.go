package asciijson

// Document represents a JSON object as an ordered collection of key-value
// pairs. Each pair is represented by an Entry; encoding preserves entry
// order.
type Document []Entry

// Array represents a JSON array, defined as a slice of values of any type.
type Array []any

// Entry represents a single entry in a document. It consists of a string key
// and an associated value of any type.
type Entry struct {
	Key   string
	Value any
}
