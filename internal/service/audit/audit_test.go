package audit

import (
	"context"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/repo/enttest"
	"github.com/physiofit/clinic_backend/pkg/reqctx"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { _ = client.Close() })
	return New(client)
}

func TestRecordAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	actor := uuid.New()
	apptID := uuid.New()

	reqCtx := reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{RequestID: "req-123"})
	svc.Record(reqCtx, &actor, "appointment.cancel", "appointment", apptID, map[string]any{
		"status": "cancelled",
		"reason": "patient request",
	})
	svc.Record(ctx, nil, "invoice.issue", "invoice", uuid.New(), nil)

	result, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Total)
	}

	t.Run("filter by actor", func(t *testing.T) {
		result, err := svc.List(ctx, ListRequest{ActorID: &actor})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("total = %d, want 1", result.Total)
		}
		entry := result.Data[0]
		if entry.Action != "appointment.cancel" {
			t.Errorf("action = %q", entry.Action)
		}
		if entry.RequestID == nil || *entry.RequestID != "req-123" {
			t.Errorf("request id not captured")
		}
		if entry.Changes["status"] != "cancelled" {
			t.Errorf("changes = %v", entry.Changes)
		}
	})

	t.Run("filter by entity", func(t *testing.T) {
		et := "invoice"
		result, err := svc.List(ctx, ListRequest{EntityType: &et})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if result.Total != 1 {
			t.Errorf("total = %d, want 1", result.Total)
		}
	})
}
