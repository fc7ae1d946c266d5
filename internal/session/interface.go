package session

import "context"

// Store persists sessions by id. Get returns (nil, nil) when the id is
// unknown or expired; absence is not an error.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}

// Logger is the logging surface the session middleware needs.
type Logger interface {
	LogError(err error, msg string) error
	LogDebug(msg string, fields map[string]interface{})
}
