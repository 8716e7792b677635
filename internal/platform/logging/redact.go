package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// keyedPathPattern matches ShapeShift paths that embed the API key.
	keyedPathPattern = regexp.MustCompile(`/txby(apikey|address)/`)

	// authHeaderPattern matches Authorization-style header values.
	authHeaderPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+`)
)

// redactedFields are attribute and struct field names whose values are never logged.
// The ShapeShift API key appears as apiKey in form bodies and APIKey on
// domain requests; receipt emails are personal data.
var redactedFields = []string{
	"apiKey", "APIKey", "apikey", "api_key",
	"email", "Email",
	"password", "secret", "token",
	"authorization", "Authorization",
	"cookie",
}

// DefaultRedactOptions returns the masq options applied to every logger.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(redactedFields)+3)
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(keyedPathPattern),
		masq.WithRegex(authHeaderPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr that redacts with
// DefaultRedactOptions plus any extra options.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
