package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateLogin     = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnauthorized       = errors.New("login required")
	ErrForbidden          = errors.New("access forbidden: administrators only")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidStatus      = errors.New("invalid patient status")
	ErrStoreFailure       = errors.New("store failure")
)

// StoreError wraps a failed call to an underlying store. It matches
// ErrStoreFailure under errors.Is while keeping the driver error in the chain.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a store failure of operation op.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreFailure }
