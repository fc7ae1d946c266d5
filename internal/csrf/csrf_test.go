package csrf

import (
	"testing"

	"github.com/clipvault/clipvault/internal/session"
)

func TestEnsureTokenIssuesOnce(t *testing.T) {
	sess := &session.Session{ID: "s1"}

	token, issued, err := EnsureToken(sess)
	if err != nil {
		t.Fatalf("EnsureToken failed: %v", err)
	}
	if !issued {
		t.Error("expected a fresh token to be reported as issued")
	}
	if len(token) != tokenBytes*2 {
		t.Errorf("expected %d hex chars, got %d", tokenBytes*2, len(token))
	}

	again, issued, err := EnsureToken(sess)
	if err != nil {
		t.Fatalf("EnsureToken failed: %v", err)
	}
	if issued {
		t.Error("existing token must not be reissued")
	}
	if again != token {
		t.Errorf("token changed across calls: %q vs %q", token, again)
	}
}

func TestEnsureTokenIsUniquePerSession(t *testing.T) {
	a, _, _ := EnsureToken(&session.Session{ID: "a"})
	b, _, _ := EnsureToken(&session.Session{ID: "b"})
	if a == b {
		t.Error("two sessions received the same token")
	}
}

func TestSafeMethod(t *testing.T) {
	for _, m := range []string{"GET", "HEAD", "OPTIONS"} {
		if !SafeMethod(m) {
			t.Errorf("%s should be safe", m)
		}
	}
	for _, m := range []string{"POST", "PUT", "PATCH", "DELETE", "get"} {
		if SafeMethod(m) {
			t.Errorf("%s should not be safe", m)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		presented    string
		sessionToken string
		want         bool
	}{
		{"safe method without token", "GET", "", "abc", true},
		{"matching token", "POST", "abc", "abc", true},
		{"missing presented token", "POST", "", "abc", false},
		{"missing session token", "POST", "abc", "", false},
		{"both missing", "POST", "", "", false},
		{"mismatch", "POST", "abc", "abd", false},
		{"prefix is not a match", "POST", "ab", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.method, tt.presented, tt.sessionToken); got != tt.want {
				t.Errorf("Validate(%q, %q, %q) = %v, want %v",
					tt.method, tt.presented, tt.sessionToken, got, tt.want)
			}
		})
	}
}
