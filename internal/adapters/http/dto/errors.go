// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
// It provides a consistent structure for API error handling.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "UNKNOWN_PAIR", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional context about the error.
	// For validation errors, this contains field-level error messages.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates the requested resource was not found.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeConflict indicates the request conflicts with upstream state.
	ErrorCodeConflict = "CONFLICT"

	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeUnknownPair indicates the exchange does not trade the pair.
	ErrorCodeUnknownPair = "UNKNOWN_PAIR"

	// ErrorCodeNotDepositAddress indicates the address is not an exchange deposit address.
	ErrorCodeNotDepositAddress = "NOT_DEPOSIT_ADDRESS"

	// ErrorCodeUpstream indicates the exchange refused or garbled the request.
	ErrorCodeUpstream = "UPSTREAM_ERROR"

	// ErrorCodeUnavailable indicates the exchange could not be reached.
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates the request deadline passed before the exchange answered.
	ErrorCodeTimeout = "TIMEOUT"

	// ErrorCodeBadRequest indicates the request was malformed.
	ErrorCodeBadRequest = "BAD_REQUEST"

	// ErrorCodeMethodNotAllowed indicates the route exists for another method.
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// ContextKeyTraceID is the gin context key checked first by GetTraceID.
const ContextKeyTraceID = "trace_id"

// headerRequestID is the fallback trace identifier.
const headerRequestID = "X-Request-ID"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest, ErrorCodeUnknownPair, ErrorCodeNotDepositAddress:
		return http.StatusBadRequest
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeUpstream:
		return http.StatusBadGateway
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// CodeFromError maps an exchange error to an error code.
// Errors that carry no domain kind map to ErrorCodeInternal.
func CodeFromError(err error) string {
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		return ErrorCodeValidation
	case domain.KindUnknownPair:
		return ErrorCodeUnknownPair
	case domain.KindNotDepositAddress:
		return ErrorCodeNotDepositAddress
	case domain.KindNoPendingTransaction, domain.KindNoTransactionFound, domain.KindOutOfBounds:
		return ErrorCodeNotFound
	case domain.KindTransactionNotCancelled:
		return ErrorCodeConflict
	case domain.KindAPIError, domain.KindMalformedResponse:
		return ErrorCodeUpstream
	case domain.KindRequestFailed:
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrorCodeTimeout
		}

		return ErrorCodeUnavailable
	default:
		return ErrorCodeInternal
	}
}

// MapError maps an error to an HTTP status code and error response.
// Unknown errors get a generic message so internals are not leaked.
func MapError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	code := CodeFromError(err)

	message := err.Error()
	if code == ErrorCodeInternal {
		message = "an internal error occurred"
	}

	return HTTPStatusFromCode(code), NewErrorResponse(code, message)
}

// GetTraceID returns the identifier echoed in error envelopes: an explicit
// trace_id context value, then the active span's trace ID, then X-Request-ID.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyTraceID); ok {
		s, _ := v.(string)
		return s
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return c.GetHeader(headerRequestID)
}

// HandleError writes the error envelope for err.
// Internal errors are logged with full details.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// RespondWithCode writes an error envelope for an adapter-level failure that
// did not come from the exchange.
func RespondWithCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithBindingError writes a 400 for a request that failed binding or
// validation, with field-level details when there are any.
func RespondWithBindingError(c *gin.Context, err error) {
	if fields := ValidationErrors(err); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			fields,
		).WithTraceID(GetTraceID(c)))

		return
	}

	if errors.Is(err, ErrValidation) {
		RespondWithCode(c, ErrorCodeValidation, err.Error())
		return
	}

	RespondWithCode(c, ErrorCodeBadRequest, err.Error())
}
