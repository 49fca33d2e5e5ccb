package errors

import (
	gErrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// These are the Codes used in the error messages returned to callers
// of the status API and written to the run report.
const (
	clientError          = "ClientError"
	serverError          = "ServerError"
	validationError      = "RequestValidationError"
	notFoundError        = "NotFoundError"
	roleNotAssumable     = "RoleNotAssumableError"
	regionUnavailable    = "RegionUnavailableError"
	unexpectedMembership = "UnexpectedMembershipError"
)

type detailError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// StatusError is the custom error type we are using.
// Should satisfy errors interface
type StatusError struct {
	httpCode int
	cause    error
	Details  detailError `json:"error"`
	stack    *stack
}

func (e *StatusError) Error() string { return e.Details.Message }

// OriginalError provides the underlying error
func (e *StatusError) OriginalError() error { return e.cause }

// HTTPCode returns the http code
func (e *StatusError) HTTPCode() int { return e.httpCode }

// StackTrace returns the frames for a stack trace
func (e *StatusError) StackTrace() errors.StackTrace {
	return e.stack.StackTrace()
}

// Format for the standard format library
func (e *StatusError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v", e.OriginalError())
			e.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// Is checks to see if the errors match
func (e *StatusError) Is(err error) bool {

	s, ok := err.(HTTPCode)
	if ok {
		if s.HTTPCode() == e.httpCode && e.Error() == err.Error() {
			return true
		}
	}
	return false
}

// HTTPCode returns the API Code
type HTTPCode interface {
	HTTPCode() int
}

// HTTPCodeForError returns the HTTP status for a particular error.
func HTTPCodeForError(err error) int {
	var s HTTPCode
	if gErrors.As(err, &s) {
		return s.HTTPCode()
	}
	return http.StatusInternalServerError
}

// GetStackTrace returns the API Code
type GetStackTrace interface {
	StackTrace() errors.StackTrace
}

// GetStackTraceForError returns the stack trace of a StatusError, or nil.
func GetStackTraceForError(err error) errors.StackTrace {
	switch t := err.(type) {
	case GetStackTrace:
		return t.StackTrace()
	}
	return nil
}

// NewValidation creates a validation error
func NewValidation(group string, err error) *StatusError {
	return &StatusError{
		httpCode: http.StatusBadRequest,
		cause:    err,
		Details: detailError{
			Message: fmt.Sprintf("%s validation error: %v", group, err),
			Code:    validationError,
		},
		stack: callers(),
	}
}

// NewNotFound returns an a NotFound error with standard messaging
func NewNotFound(group string, name string) *StatusError {
	return &StatusError{
		httpCode: http.StatusNotFound,
		Details: detailError{
			Message: fmt.Sprintf("%s %q not found", group, name),
			Code:    notFoundError,
		},
		stack: callers(),
	}
}

// NewInternalServer returns an error for Internal Server Errors
func NewInternalServer(m string, err error) *StatusError {
	return &StatusError{
		httpCode: http.StatusInternalServerError,
		cause:    err,
		Details: detailError{
			Message: m,
			Code:    serverError,
		},
		stack: callers(),
	}
}

// NewBadRequest returns a new error representing a bad request
func NewBadRequest(m string) *StatusError {
	return &StatusError{
		httpCode: http.StatusBadRequest,
		cause:    nil,
		Details: detailError{
			Message: m,
			Code:    clientError,
		},
		stack: callers(),
	}
}

// NewRoleNotAssumable returns a new error representing a role the caller could not assume
func NewRoleNotAssumable(role string, err error) *StatusError {
	return &StatusError{
		httpCode: http.StatusUnprocessableEntity,
		cause:    err,
		Details: detailError{
			Message: fmt.Sprintf("role %q is not assumable: %v", role, err),
			Code:    roleNotAssumable,
		},
		stack: callers(),
	}
}

// NewRegionUnavailable returns an error for a region GuardDuty could not be managed in
func NewRegionUnavailable(region string, err error) *StatusError {
	return &StatusError{
		httpCode: http.StatusServiceUnavailable,
		cause:    err,
		Details: detailError{
			Message: fmt.Sprintf("unable to manage GuardDuty in region %s: %v", region, err),
			Code:    regionUnavailable,
		},
		stack: callers(),
	}
}

// NewUnexpectedMembership returns an error describing a member relationship
// that needs manual investigation
func NewUnexpectedMembership(accountID string, status string) *StatusError {
	return &StatusError{
		httpCode: http.StatusConflict,
		Details: detailError{
			Message: fmt.Sprintf("account %q is in unexpected GuardDuty state %s", accountID, status),
			Code:    unexpectedMembership,
		},
		stack: callers(),
	}
}

// Is reports whether any error in err's chain matches target.
// A nil target never matches.
func Is(err error, target error) bool {
	if target == nil {
		return false
	}
	return gErrors.Is(err, target)
}
