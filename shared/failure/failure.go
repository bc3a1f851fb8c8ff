package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProxyError is returned when the upstream could not be reached in time.
var ProxyError = &Failure{Code: http.StatusInternalServerError, Message: "proxy-error"}

// DiagFailed is returned when the diagnostics probe could not reach the upstream.
var DiagFailed = &Failure{Code: http.StatusInternalServerError, Message: "diag-failed"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// UpstreamStatus returns a gateway Failure naming the status the upstream replied with.
func UpstreamStatus(status int) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: fmt.Sprintf("apps-script %d", status),
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsValidation reports whether err is a 400-class Failure.
func IsValidation(err error) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code == http.StatusBadRequest
	}

	return false
}
