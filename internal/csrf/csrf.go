// Package csrf implements double-submit CSRF protection: a per-session
// secret that state-changing requests must echo back in the request body
// or a dedicated header.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/clipvault/clipvault/internal/session"
)

// tokenBytes gives a 192-bit token, well past the 128-bit floor.
const tokenBytes = 24

// FormField and HeaderName are where clients may present the token.
const (
	FormField  = "_csrf"
	HeaderName = "X-CSRF-Token"
)

// EnsureToken returns the session's CSRF token, generating one on first
// use. Issuance is idempotent: an existing token is never replaced. The
// second return reports whether a new token was generated, so the caller
// knows the session needs saving.
func EnsureToken(sess *session.Session) (string, bool, error) {
	if sess.CsrfToken != "" {
		return sess.CsrfToken, false, nil
	}
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", false, fmt.Errorf("failed to generate CSRF token: %w", err)
	}
	sess.CsrfToken = hex.EncodeToString(buf)
	return sess.CsrfToken, true, nil
}

// SafeMethod reports whether method never requires a token: retrieval,
// metadata-only, and preflight requests.
func SafeMethod(method string) bool {
	switch method {
	case "GET", "HEAD", "OPTIONS":
		return true
	}
	return false
}

// Validate decides whether a request passes the guard. Safe methods
// always pass; anything else requires the presented token to match the
// session token exactly, compared in constant time. An absent token on
// either side is a hard deny.
func Validate(method, presented, sessionToken string) bool {
	if SafeMethod(method) {
		return true
	}
	if presented == "" || sessionToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(sessionToken)) == 1
}
