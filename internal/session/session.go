// Package session provides cookie-identified server-side sessions. The
// session record itself lives in a Store (Redis in production, memory in
// tests); middlewares receive it explicitly through the request context
// rather than as ambient state.
package session

// Session is the per-visitor state the security middlewares read:
// authenticated identity, the CSRF token, and one-time flash notices.
type Session struct {
	ID        string              `json:"id"`
	UserID    int64               `json:"userId,omitempty"`
	Username  string              `json:"username,omitempty"`
	CsrfToken string              `json:"csrfToken,omitempty"`
	Flash     map[string][]string `json:"flash,omitempty"`
}

// Authenticated reports whether the session carries a logged-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// AddFlash queues a one-time notice under kind ("error", "success").
func (s *Session) AddFlash(kind, message string) {
	if s.Flash == nil {
		s.Flash = make(map[string][]string)
	}
	s.Flash[kind] = append(s.Flash[kind], message)
}

// ConsumeFlash returns and clears the notices queued under kind.
func (s *Session) ConsumeFlash(kind string) []string {
	if s.Flash == nil {
		return nil
	}
	messages := s.Flash[kind]
	delete(s.Flash, kind)
	return messages
}

// clone deep-copies the session so stored and live state never alias.
func (s *Session) clone() *Session {
	out := *s
	if s.Flash != nil {
		out.Flash = make(map[string][]string, len(s.Flash))
		for kind, messages := range s.Flash {
			out.Flash[kind] = append([]string(nil), messages...)
		}
	}
	return &out
}

// Reset clears the authenticated identity and flash state but keeps the
// session id and CSRF token, so a login form rendered before
// authentication still validates.
func (s *Session) Reset() {
	s.UserID = 0
	s.Username = ""
	s.Flash = nil
}
