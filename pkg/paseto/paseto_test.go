package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	keys := NewLocalKeys()
	m, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "clinic-backend",
		Audience:  "clinic-api",
		AccessTTL: 15 * time.Minute,
	}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.New()
	sessionID := uuid.New()

	tokenStr, err := m.IssueAccess(userID, "physio", &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(tokenStr)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("expected access token, got %q", claims.Type)
	}
	if claims.UserID != userID {
		t.Errorf("user id mismatch: %s != %s", claims.UserID, userID)
	}
	if claims.Role != "physio" {
		t.Errorf("expected role physio, got %q", claims.Role)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("session id mismatch")
	}
	if claims.IsExpired() {
		t.Error("fresh token reported as expired")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Verify("v4.local.not-a-real-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := newTestManager(t)
	verifier := newTestManager(t)

	tokenStr, err := issuer.IssueAccess(uuid.New(), "admin", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := verifier.Verify(tokenStr); err == nil {
		t.Fatal("expected verification to fail with a different key")
	}
}
