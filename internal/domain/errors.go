// Package domain contains the ShapeShift business types and errors.
// Domain errors describe why an exchange operation failed, NOT how it was transported.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an exchange operation failure.
type Kind int

const (
	// KindUnknown is the zero value; it is never produced by this package.
	KindUnknown Kind = iota

	// KindInvalidArgument means the caller supplied inconsistent input.
	// It is raised locally, before any network activity.
	KindInvalidArgument

	// KindRequestFailed means the transport failed (DNS, connect, timeout).
	KindRequestFailed

	// KindMalformedResponse means the body did not decode, or lacked a field
	// required by the operation's success shape.
	KindMalformedResponse

	// KindUnknownPair is the upstream "Unknown pair" error.
	KindUnknownPair

	// KindNotDepositAddress is the upstream "not a deposit address" error.
	KindNotDepositAddress

	// KindNoPendingTransaction is the upstream "Unable to find pending transaction" error.
	KindNoPendingTransaction

	// KindNoTransactionFound is the upstream "No transaction found." error.
	KindNoTransactionFound

	// KindAPIError is any other upstream error message.
	KindAPIError

	// KindTransactionNotCancelled wraps any domain failure of a cancellation.
	KindTransactionNotCancelled

	// KindOutOfBounds means a market info lookup used a pair not in the set.
	KindOutOfBounds
)

// String returns a stable snake_case name, used in logs and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindRequestFailed:
		return "request_failed"
	case KindMalformedResponse:
		return "malformed_response"
	case KindUnknownPair:
		return "unknown_pair"
	case KindNotDepositAddress:
		return "not_deposit_address"
	case KindNoPendingTransaction:
		return "no_pending_transaction"
	case KindNoTransactionFound:
		return "no_transaction_found"
	case KindAPIError:
		return "api_error"
	case KindTransactionNotCancelled:
		return "transaction_not_cancelled"
	case KindOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Sentinel errors for use with errors.Is().
var (
	// ErrAPI matches every *Error: the "API operation failed" base.
	ErrAPI = errors.New("shapeshift operation failed")

	ErrInvalidArgument         = errors.New("invalid argument")
	ErrRequestFailed           = errors.New("request failed")
	ErrMalformedResponse       = errors.New("malformed response")
	ErrUnknownPair             = errors.New("unknown pair")
	ErrNotDepositAddress       = errors.New("not a deposit address")
	ErrNoPendingTransaction    = errors.New("no pending transaction")
	ErrNoTransactionFound      = errors.New("no transaction found")
	ErrAPIError                = errors.New("api error")
	ErrTransactionNotCancelled = errors.New("transaction not cancelled")
	ErrOutOfBounds             = errors.New("out of bounds")
)

// sentinel returns the sentinel error matching a kind.
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindRequestFailed:
		return ErrRequestFailed
	case KindMalformedResponse:
		return ErrMalformedResponse
	case KindUnknownPair:
		return ErrUnknownPair
	case KindNotDepositAddress:
		return ErrNotDepositAddress
	case KindNoPendingTransaction:
		return ErrNoPendingTransaction
	case KindNoTransactionFound:
		return ErrNoTransactionFound
	case KindAPIError:
		return ErrAPIError
	case KindTransactionNotCancelled:
		return ErrTransactionNotCancelled
	case KindOutOfBounds:
		return ErrOutOfBounds
	default:
		return nil
	}
}

// Error is the single error type returned by exchange operations.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Op is the logical operation that failed (e.g. "rate", "cancelpending").
	Op string

	// Message is the human-readable reason, verbatim from upstream when it came from there.
	Message string

	// Err is the underlying cause, if any (transport error, wrapped domain error).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}

	if e.Op != "" {
		msg = e.Op + ": " + msg
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

// Unwrap exposes the kind sentinel, the ErrAPI base and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 3) //nolint:mnd // sentinel, base, cause
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}

	errs = append(errs, ErrAPI)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// NewError creates an error of the given kind.
func NewError(kind Kind, op, message string) error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// WrapError creates an error of the given kind that keeps cause reachable.
func WrapError(kind Kind, op, message string, cause error) error {
	return &Error{Kind: kind, Op: op, Message: message, Err: cause}
}

// NewInvalidArgumentError creates an InvalidArgument error for a named argument.
func NewInvalidArgumentError(op, argument, reason string) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: argument + " " + reason}
}

// KindOf returns the kind of the outermost *Error in err's chain,
// or KindUnknown when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

// IsKind reports whether the outermost *Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsInvalidArgument checks if an error is an invalid argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsRequestFailed checks if an error is a transport failure.
func IsRequestFailed(err error) bool {
	return errors.Is(err, ErrRequestFailed)
}

// IsUpstreamError checks if an error was signalled by the ShapeShift payload
// itself (any recognised literal or a generic API error).
func IsUpstreamError(err error) bool {
	switch KindOf(err) {
	case KindUnknownPair, KindNotDepositAddress, KindNoPendingTransaction,
		KindNoTransactionFound, KindAPIError:
		return true
	default:
		return false
	}
}
