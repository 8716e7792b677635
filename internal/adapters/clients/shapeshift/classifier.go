package shapeshift

import (
	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
)

// Upstream error messages with a dedicated kind. Matching is exact and case-sensitive.
const (
	MessageUnknownPair          = "Unknown pair"
	MessageNotDepositAddress    = "This address is NOT a ShapeShift deposit address. Do not send anything to it."
	MessageNoPendingTransaction = "Unable to find pending transaction"
	MessageNoTransactionFound   = "No transaction found."
)

// recognizedErrors maps the recognised literals to their kinds.
var recognizedErrors = map[string]domain.Kind{
	MessageUnknownPair:          domain.KindUnknownPair,
	MessageNotDepositAddress:    domain.KindNotDepositAddress,
	MessageNoPendingTransaction: domain.KindNoPendingTransaction,
	MessageNoTransactionFound:   domain.KindNoTransactionFound,
}

// errorFields are looked up in order; the first present one is the error.
var errorFields = []string{"error", "err"}

// Outcome is the result of classifying a payload: either a success payload
// or a domain error kind with its message.
type Outcome struct {
	payload Payload
	kind    domain.Kind
	message string
}

// Success reports whether the payload is a success.
func (o Outcome) Success() bool {
	return o.kind == domain.KindUnknown
}

// Payload returns the success payload. It is the zero Payload for failures.
func (o Outcome) Payload() Payload {
	return o.payload
}

// Kind returns the failure kind, or domain.KindUnknown on success.
func (o Outcome) Kind() domain.Kind {
	return o.kind
}

// Message returns the upstream error text of a failure.
func (o Outcome) Message() string {
	return o.message
}

// Err returns the failure as a *domain.Error for op, or nil on success.
func (o Outcome) Err(op string) error {
	if o.Success() {
		return nil
	}

	return domain.NewError(o.kind, op, o.message)
}

// Classify decides whether a decoded payload is a success or a domain error.
//
// Arrays and scalars are always successes. Objects fail when they carry an
// "error" (or, failing that, "err") field. The four recognised messages always
// fail with their own kind; any other message fails with KindAPIError unless
// the endpoint is error-tolerant, in which case the payload is a success.
func Classify(p Payload, errorTolerant bool) Outcome {
	message, found := findError(p)
	if !found {
		return Outcome{payload: p}
	}

	if kind, ok := recognizedErrors[message]; ok {
		return Outcome{kind: kind, message: message}
	}

	if errorTolerant {
		return Outcome{payload: p}
	}

	return Outcome{kind: domain.KindAPIError, message: message}
}

// findError extracts the error message of an object payload.
// A null field counts as absent and lookup moves on to the next name.
// An empty-string field stops the lookup and reports no error.
func findError(p Payload) (string, bool) {
	if !p.IsObject() {
		return "", false
	}

	for _, name := range errorFields {
		f, ok := p.Field(name)
		if !ok || f.IsNull() {
			continue
		}

		if f.Kind() != PayloadScalar {
			return f.JSON(), true
		}

		text, _ := f.Text()

		return text, text != ""
	}

	return "", false
}
