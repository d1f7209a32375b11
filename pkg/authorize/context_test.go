package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/pkg/reqctx"
)

type fakeClaims struct {
	userID uuid.UUID
	role   string
}

func (f *fakeClaims) GetUserID() uuid.UUID     { return f.userID }
func (f *fakeClaims) GetSessionID() *uuid.UUID { return nil }
func (f *fakeClaims) GetRole() string          { return f.role }
func (f *fakeClaims) GetTokenType() string     { return "access" }
func (f *fakeClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	t.Run("returns subject when claims present", func(t *testing.T) {
		userID := uuid.New()
		ctx := reqctx.WithClaims(context.Background(), &fakeClaims{userID: userID, role: "physio"})

		subject, err := SubjectFromContext(ctx)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if subject != GroupSubject(userID.String()) {
			t.Errorf("Expected %s, got %s", userID, subject)
		}
	})

	t.Run("errors on empty context", func(t *testing.T) {
		_, err := SubjectFromContext(context.Background())
		if err != ErrNoSubjectInContext {
			t.Errorf("Expected ErrNoSubjectInContext, got %v", err)
		}
	})

	t.Run("errors on nil user id", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), &fakeClaims{userID: uuid.Nil})

		_, err := SubjectFromContext(ctx)
		if err != ErrNoSubjectInContext {
			t.Errorf("Expected ErrNoSubjectInContext, got %v", err)
		}
	})
}

func TestUserIDFromContext(t *testing.T) {
	userID := uuid.New()
	ctx := reqctx.WithClaims(context.Background(), &fakeClaims{userID: userID})

	got, err := UserIDFromContext(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != userID {
		t.Errorf("Expected %s, got %s", userID, got)
	}

	if _, err := UserIDFromContext(context.Background()); err != ErrNoSubjectInContext {
		t.Errorf("Expected ErrNoSubjectInContext, got %v", err)
	}
}
