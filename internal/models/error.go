package models

// ErrorCode classifies an API error.
type ErrorCode string

const (
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrorCodeUnavailable    ErrorCode = "UNAVAILABLE"
	ErrorCodeInternal       ErrorCode = "INTERNAL"
)

// ErrorDetail points at a specific field problem.
type ErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ErrorInfo is the body of an error response.
type ErrorInfo struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorResponse is the standard error envelope returned by every handler.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorInfo{Code: string(code), Message: message}}
}

// NewValidationError builds an invalid-request envelope with field details.
func NewValidationError(message string, details []ErrorDetail) ErrorResponse {
	return ErrorResponse{Error: ErrorInfo{
		Code:    string(ErrorCodeInvalidRequest),
		Message: message,
		Details: details,
	}}
}

// NewNotFoundError builds a not-found envelope.
func NewNotFoundError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeNotFound, message)
}

// NewUnavailableError builds an envelope for a disabled or unreachable
// collaborator (email delivery without an API key, for example).
func NewUnavailableError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeUnavailable, message)
}

// NewInternalError builds an internal-error envelope.
func NewInternalError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeInternal, message)
}
