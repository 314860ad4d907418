package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced test, subject entry or template id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName means a template name is already taken.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrStorage is any failure of the underlying database.
	ErrStorage = errors.New("storage error")
	// ErrLockContention means the store's writer gate could not be acquired.
	ErrLockContention = errors.New("store is busy")
	// ErrInvalidArgument is input rejected before touching the database.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error tags an underlying cause with the operation that failed and one of
// the sentinel kinds above. errors.Is matches both the kind and the cause.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op string, kind error, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func NotFound(op, format string, args ...any) error {
	return newError(op, ErrNotFound, fmt.Errorf(format, args...))
}

func DuplicateName(op, name string) error {
	return newError(op, ErrDuplicateName, fmt.Errorf("template %q already exists", name))
}

func InvalidArgument(op, format string, args ...any) error {
	return newError(op, ErrInvalidArgument, fmt.Errorf(format, args...))
}

func LockContention(op string, err error) error {
	return newError(op, ErrLockContention, err)
}

// Storage wraps a database failure. Errors that already carry a kind are
// returned unchanged so a NotFound raised inside a transaction survives the
// rollback path.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return newError(op, ErrStorage, err)
}
