package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that should outlive the process
// logs, such as shutdowns.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
