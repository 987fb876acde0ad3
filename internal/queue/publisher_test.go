package queue

import (
	"context"
	"testing"
)

func TestPublishAuditDisabled(t *testing.T) {
	ctx := context.Background()
	event := AuditEvent{Resource: "category", Action: "create", EntityID: 1}

	var p *Publisher
	if err := p.PublishAudit(ctx, event); err != nil {
		t.Fatalf("nil publisher should be a no-op, got %v", err)
	}

	if err := (&Publisher{}).PublishAudit(ctx, event); err != nil {
		t.Fatalf("empty URL should be a no-op, got %v", err)
	}
}
