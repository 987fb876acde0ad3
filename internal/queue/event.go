package queue

import "time"

// AuditQueue is the durable queue every admin mutation is reported to.
const AuditQueue = "admin.audit"

// AuditEvent describes one create/update/delete performed on the dashboard.
type AuditEvent struct {
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	EntityID int64     `json:"entityId"`
	Name     string    `json:"name,omitempty"`
	ActorID  int64     `json:"actorId,omitempty"`
	At       time.Time `json:"at"`
}
