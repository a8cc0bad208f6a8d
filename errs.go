package asciijson

import (
	"errors"
	"fmt"
)

var (
	// ErrStructure reports an operation that is inconsistent with the JSON
	// grammar given the writer's current nesting state.
	ErrStructure = errors.New("structural violation")

	// ErrMultiRoot reports an attempt to write a second value directly under
	// the document root. A JSON document has exactly one top-level value.
	ErrMultiRoot = fmt.Errorf("%w: multiple root values", ErrStructure)

	// ErrNullKey reports a nil key passed to WriteKeyBytes or one of the
	// key-value helpers.
	ErrNullKey = errors.New("key is null")

	// ErrNonFinite reports a NaN or infinite floating-point value. JSON has
	// no token for these.
	ErrNonFinite = errors.New("value is NaN or infinity")
)

// StructureError is the detailed form of ErrStructure: the operation that was
// rejected and the kind of node that was open when it was attempted.
type StructureError struct {
	Op     string
	Parent NodeKind
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("structural violation: cannot %s when parent is %s", e.Op, e.Parent)
}

func (e *StructureError) Unwrap() error { return ErrStructure }
