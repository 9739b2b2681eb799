package inspect

import (
	"errors"
	"fmt"
)

// Code identifies one failure class in the inspection error taxonomy. All
// failures are synchronous and final; nothing here is transient or retried.
type Code string

const (
	// CodeNotFound is a name lookup miss.
	CodeNotFound Code = "not_found"
	// CodeIndexOutOfRange is a positional lookup miss.
	CodeIndexOutOfRange Code = "index_out_of_range"
	// CodeInvalidKeyType is a selector that is neither string nor int.
	CodeInvalidKeyType Code = "invalid_key_type"
	// CodeAlreadyInitialized is a second init attempt on the same class.
	CodeAlreadyInitialized Code = "already_initialized"
	// CodeNotInitialized is a non-static call before init.
	CodeNotInitialized Code = "not_initialized"
	// CodeUnsupportedObject is an input that is neither an introspectable
	// callable nor a type.
	CodeUnsupportedObject Code = "unsupported_object"
)

// Error is a structured inspection failure.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func codeIs(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsNotFound reports whether err is a name lookup miss.
func IsNotFound(err error) bool { return codeIs(err, CodeNotFound) }

// IsIndexOutOfRange reports whether err is a positional lookup miss.
func IsIndexOutOfRange(err error) bool { return codeIs(err, CodeIndexOutOfRange) }

// IsInvalidKeyType reports whether err is a wrong selector type.
func IsInvalidKeyType(err error) bool { return codeIs(err, CodeInvalidKeyType) }

// IsAlreadyInitialized reports whether err is a repeated init.
func IsAlreadyInitialized(err error) bool { return codeIs(err, CodeAlreadyInitialized) }

// IsNotInitialized reports whether err is a call before init.
func IsNotInitialized(err error) bool { return codeIs(err, CodeNotInitialized) }

// IsUnsupportedObject reports whether err is an uninspectable input.
func IsUnsupportedObject(err error) bool { return codeIs(err, CodeUnsupportedObject) }
