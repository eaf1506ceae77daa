package dataset

import "fmt"

// ErrColumnNotFound indicates a requested column is absent from the schema.
type ErrColumnNotFound struct {
	Column string
}

func (e *ErrColumnNotFound) Error() string {
	return fmt.Sprintf("column not found: %q", e.Column)
}

// ErrNotNumeric indicates a feature column has a non-numeric kind.
type ErrNotNumeric struct {
	Column string
	Kind   Kind
}

func (e *ErrNotNumeric) Error() string {
	return fmt.Sprintf("column %q is not numeric (kind %s)", e.Column, e.Kind)
}
