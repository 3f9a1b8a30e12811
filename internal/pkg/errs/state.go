package errs

import (
	"errors"
	"fmt"
)

var (
	ErrStateConflict = errors.New("state conflict")
	ErrAccessDenied  = errors.New("access denied")
)

// StateConflictError reports an operation that is not legal for the current
// lifecycle state of an object. Instances are usually declared once as package
// level sentinels, so both errors.Is(err, instance) and errors.Is(err, ErrStateConflict) hold.
type StateConflictError struct {
	Object string
	Reason string
	Cause  error
}

func NewStateConflictError(object, reason string) *StateConflictError {
	return &StateConflictError{Object: object, Reason: reason}
}

func NewStateConflictErrorWithCause(object, reason string, cause error) *StateConflictError {
	return &StateConflictError{Object: object, Reason: reason, Cause: cause}
}

func (e *StateConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrStateConflict, e.Object, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrStateConflict, e.Object, e.Reason)
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// AccessDeniedError reports an actor whose role may not perform an action.
type AccessDeniedError struct {
	Role   string
	Action string
	Cause  error
}

func NewAccessDeniedError(role, action string) *AccessDeniedError {
	return &AccessDeniedError{Role: role, Action: action}
}

func NewAccessDeniedErrorWithCause(role, action string, cause error) *AccessDeniedError {
	return &AccessDeniedError{Role: role, Action: action, Cause: cause}
}

func (e *AccessDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s cannot %s (cause: %v)", ErrAccessDenied, e.Role, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s cannot %s", ErrAccessDenied, e.Role, e.Action)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
