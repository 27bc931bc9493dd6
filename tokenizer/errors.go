package tokenizer

import (
	"errors"

	"golang.org/x/xerrors"
)

// errRouteFailure is the sentinel for a route failure: a private,
// recoverable control transfer raised by the safety verifier, by
// end-of-input inside a failing context, or by an explicit condition such
// as a bare newline inside a heading. It replaces the longjmp-based
// BAD_ROUTE/RESET_ROUTE signal of the original implementation with a Go
// error value that every parse/handle* method returns and every caller of
// a speculative parse checks with errors.Is before falling back to literal
// text.
var errRouteFailure = errors.New("tokenizer: route failed")

// failRoute discards the current frame and returns the route-failure
// sentinel. The frame is always deleted before the sentinel becomes
// observable to the caller, so a failing route never leaks a dangling
// frame — the same ordering contract tokenizer.c enforces manually, free
// before longjmp.
func (t *Tokenizer) failRoute() error {
	t.deleteTop()
	return errRouteFailure
}

// IsRouteFailure reports whether err is (or wraps) a route failure, as
// opposed to a hard error.
func IsRouteFailure(err error) bool {
	return errors.Is(err, errRouteFailure)
}

// hardError wraps an unrecoverable error — a malformed FileSet, a nil
// input — with xerrors so a caller can unwrap to the original cause.
// Grounded on pgavlin-yomlette/parser/error.go's use of xerrors.Errorf for
// its reportable error type.
func hardError(format string, args ...interface{}) error {
	return xerrors.Errorf(format, args...)
}
