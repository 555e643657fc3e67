package logging

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// redacted replaces sensitive values in header attributes. masq uses the
// same marker.
const redacted = "[REDACTED]"

// SensitiveHeaders is the set of HTTP header names (lowercase) that carry
// credentials. It drives both HeaderAttrs and the masq field-name rules, so
// the two cannot drift apart.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// At least 10 characters per segment so version strings don't match.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// Credentials smuggled into a logged query_string, e.g.
	// "?search=x&access_token=abc" or "api_key=abc".
	queryCredentialPattern = regexp.MustCompile(`(?i)(access_token|api[_\-]?key|apikey|token)=[^&\s]+`)
)

// HeaderAttrs renders headers as one "headers" group attribute. Values of
// SensitiveHeaders are replaced with [REDACTED]; multi-value headers are
// joined with a comma.
func HeaderAttrs(headers http.Header) slog.Attr {
	attrs := make([]any, 0, len(headers))
	for key, vals := range headers {
		if SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return slog.Group("headers", attrs...)
}

// newRedactAttr returns the masq ReplaceAttr hook installed by New. It
// redacts known sensitive field names and, as a second line, any value
// matching a credential pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+8)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(queryCredentialPattern),
	)

	return masq.New(opts...)
}
