package apperror

import "net/http"

// Error kinds carried in the response envelope next to the HTTP status, so
// clients can branch on the failure class without parsing messages.
const (
	KindBadRequest = "bad_request"
	KindNotFound   = "not_found"
	KindInternal   = "internal"
)

// AppError pairs a user-facing message with a fixed HTTP status and kind.
// Err holds the underlying cause for server-side logging and never reaches
// the client.
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "An unexpected error occurred. Please try again later.", err)
}
