// Package errors defines the sentinel errors shared across the service and
// how each maps onto an HTTP response.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrFieldConversion    = errors.New("field conversion failed")
	ErrMissingParameter   = errors.New("missing parameter")
	ErrUnknownQueryNode   = errors.New("unknown query node")
	ErrConfiguration      = errors.New("configuration error")
	ErrStoreIO            = errors.New("index store i/o error")
	ErrTemplateNotFound   = errors.New("query template not found")
	ErrIndexNotFound      = errors.New("index not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrFactoryClosed      = errors.New("searcher context factory closed")
	ErrSnapshotReleased   = errors.New("reader snapshot already released")
	ErrInternal           = errors.New("internal error")
	ErrTimeout            = errors.New("operation timed out")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// statuses is consulted in order for errors that are not an AppError.
var statuses = []struct {
	sentinel error
	status   int
}{
	{ErrDocumentNotFound, http.StatusNotFound},
	{ErrTemplateNotFound, http.StatusNotFound},
	{ErrIndexNotFound, http.StatusNotFound},
	{ErrInvalidInput, http.StatusBadRequest},
	{ErrFieldConversion, http.StatusBadRequest},
	{ErrMissingParameter, http.StatusBadRequest},
	{ErrUnknownQueryNode, http.StatusBadRequest},
	{ErrServiceUnavailable, http.StatusServiceUnavailable},
	{ErrTimeout, http.StatusServiceUnavailable},
	{ErrFactoryClosed, http.StatusServiceUnavailable},
}

// AppError pairs a sentinel with a message fit for the response body.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *AppError) Error() string {
	return e.Err.Error() + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, statusCode int, message string) *AppError {
	return &AppError{Err: sentinel, Message: message, StatusCode: statusCode}
}

func Newf(sentinel error, statusCode int, format string, args ...any) *AppError {
	return New(sentinel, statusCode, fmt.Sprintf(format, args...))
}

// Wrap attaches a sentinel to an underlying cause, keeping both reachable
// through errors.Is.
func Wrap(sentinel error, statusCode int, cause error, message string) *AppError {
	return New(fmt.Errorf("%w: %w", sentinel, cause), statusCode, message)
}

// HTTPStatusCode is the status an error deserves. Unknown errors are 500.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	for _, s := range statuses {
		if errors.Is(err, s.sentinel) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// ResponseStatus is the status actually written for err. Request errors are
// answered with 200 and success=false; only server side failures keep their
// status.
func ResponseStatus(err error) int {
	if status := HTTPStatusCode(err); status >= http.StatusInternalServerError {
		return status
	}
	return http.StatusOK
}

// Message is the text reported to clients: the AppError message when there
// is one, the full error otherwise.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
