package ports

import (
	"context"
	"time"
)

// Audit actions recorded for identity mutations.
const (
	AuditSignup = "signup"
	AuditUpdate = "update"
	AuditDelete = "delete"
)

// AuditEntry records one identity mutation.
type AuditEntry struct {
	UserID string    `bson:"user_id"`
	Action string    `bson:"action"`
	Email  string    `bson:"email,omitempty"`
	At     time.Time `bson:"at"`
}

// AuditRecorder persists audit entries.
type AuditRecorder interface {
	Record(ctx context.Context, e AuditEntry) error
}

// AuditTrail accepts entries off the request path. Enqueue must not block
// the caller beyond channel capacity.
type AuditTrail interface {
	Enqueue(e AuditEntry)
}
