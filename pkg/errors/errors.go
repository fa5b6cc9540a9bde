// Package errors provides structured error handling for the tableview library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration or theme loading error.
	KindConfig
	// KindContract indicates a violated caller contract (for example an
	// out-of-range row index or a release of an unbound cell).
	KindContract
	// KindDataSource indicates a misbehaving data source.
	KindDataSource
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindContract:
		return "contract"
	case KindDataSource:
		return "datasource"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// TableError represents a structured error in the tableview library.
type TableError struct {
	// Op is the operation that failed (e.g., "theme.LoadOptional").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TableError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "showcase.eventLoop").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the tableview library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TableError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
