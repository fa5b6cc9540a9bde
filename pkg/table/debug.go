package table

import (
	stderrors "errors"

	"github.com/go-drift/tableview/pkg/errors"
)

// DebugMode controls how caller contract violations are handled.
// When true, violations panic so bugs surface immediately during
// development. When false, violations are reported to the global error
// handler and the operation degrades as gracefully as it can.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the library.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// contractViolation handles a violated caller precondition.
func contractViolation(op, msg string) {
	if DebugMode {
		panic(op + ": " + msg)
	}
	errors.Report(&errors.TableError{
		Op:   op,
		Kind: errors.KindContract,
		Err:  stderrors.New(msg),
	})
}
