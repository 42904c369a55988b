package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// JWT: three base64 segments separated by dots.
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)

	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)

	// Backend URLs with embedded user:password, e.g. a BACKEND_URL behind basic auth.
	credentialURLPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://[^/@\s:]+:[^/@\s]+@`)
)

// sensitiveFields are attribute names whose values are always masked.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"apiKey",
	"api_key",
	"accessToken",
	"access_token",
	"refreshToken",
	"refresh_token",
	"credential",
	"credentials",
	"authorization",
	"auth",
	"cookie",
	"session",
	"privateKey",
	"private_key",
}

// DefaultRedactOptions returns the masq options used by every handler New builds.
//
// Extend them for a specific handler with:
//
//	logging.NewReplaceAttr(masq.WithFieldName("MySecretField"))
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveFields)+6)
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
		masq.WithRegex(credentialURLPattern),
	)
}

// NewReplaceAttr creates a slog ReplaceAttr function that redacts sensitive
// data using DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
