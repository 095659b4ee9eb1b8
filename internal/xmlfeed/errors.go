package xmlfeed

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsafeDocument is returned for documents carrying DTD or entity declarations.
	ErrUnsafeDocument = errors.New("document declarations are not allowed")
	// ErrNoRootElement is returned for documents without a root element.
	ErrNoRootElement = errors.New("document has no root element")
	// ErrInvalidBoolean is returned for text that is not a known boolean token.
	ErrInvalidBoolean = errors.New("not a boolean token")
	// ErrNonFiniteDecimal is returned for NaN and infinite decimal text.
	ErrNonFiniteDecimal = errors.New("decimal is not finite")
	// ErrMultipleRoots is returned for documents with more than one top-level element.
	ErrMultipleRoots = errors.New("document has more than one root element")
)

// MalformedDocumentError reports a feed response that could not be parsed as
// well-formed, safe XML. Extraction aborts for the whole call.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed feed document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// CoercionError reports a field that was present but could not be converted
// to its declared type. Index is the zero-based position of the record
// element in the document, or -1 when the value was coerced outside a record.
type CoercionError struct {
	Index   int
	Field   string
	Value   string
	Pattern string
	Err     error
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("cannot coerce %q", e.Value)
	if e.Pattern != "" {
		msg += fmt.Sprintf(" with pattern %q", e.Pattern)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("record %d field %q: %s", e.Index, e.Field, msg)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
