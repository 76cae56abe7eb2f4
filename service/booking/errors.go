package booking

import "errors"

// Coded errors separate business outcomes (conflict, capacity, not found)
// from infrastructure failures: anything without a code is treated by the
// controllers as an internal error.

type ErrCode string

const (
	ErrNotFound   ErrCode = "NOT_FOUND"
	ErrValidation ErrCode = "VALIDATION"
	ErrCapacity   ErrCode = "CAPACITY_EXCEEDED"
	ErrConflict   ErrCode = "CONFLICT"
	ErrForbidden  ErrCode = "FORBIDDEN"
	ErrBusy       ErrCode = "RESOURCE_BUSY"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }

func Err(c ErrCode) error              { return codedError{code: c} }
func Errf(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts the error code, or "" for uncoded (internal) errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
