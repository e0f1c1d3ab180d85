package services

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed or incomplete checkout submission.
// It is raised before any side effect.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid submission"
	}
	return "invalid submission: " + strings.Join(e.Fields, ", ")
}

// PersistenceError reports that the storage layer did not acknowledge an
// insert. Order creation is aborted and no notifications are attempted.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist order: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotFoundError reports a lookup miss on the query surface.
type NotFoundError struct {
	OrderNumber string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.OrderNumber)
}

// OperationError wraps any other unexpected storage or orchestration fault.
// Callers surface it with a generic diagnostic.
type OperationError struct {
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation failed: %v", e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }
