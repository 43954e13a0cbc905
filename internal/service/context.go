// internal/service/context.go
package service

type contextKey string

// Request metadata propagated from the HTTP layer for audit trails.
const (
	ContextKeyIP        = contextKey("client_ip")
	ContextKeyUserAgent = contextKey("user_agent")
)
