package httpx

// Logger is the logging surface the HTTP plumbing needs.
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}
