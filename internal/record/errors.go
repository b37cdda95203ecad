package record

import (
	"fmt"
	"strings"
)

// NotFoundError indicates no employee matched the lookup key.
type NotFoundError struct {
	Identification string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no employee found with identification number %q", e.Identification)
}

// IncompleteError indicates the fetched record carries no identity at all
// and cannot be normalized.
type IncompleteError struct{}

func (e *IncompleteError) Error() string {
	return "employee record is missing both id and name"
}

// SchemaError indicates the store's employee schema lacks a field the
// lookup depends on.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("field %q does not exist in the employee schema", e.Field)
}

// Notice carries non-fatal information surfaced to the operator, such as an
// ambiguous identification match resolved by taking the first hit.
type Notice struct {
	Message string
}

// AmbiguousMatchNotice builds the notice for multiple employees sharing one
// identification number.
func AmbiguousMatchNotice(names []string) *Notice {
	return &Notice{
		Message: fmt.Sprintf("multiple employees found with the same identification number: %s; using the first match",
			strings.Join(names, ", ")),
	}
}
