package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashWithParams("s3cret-pass", LowMemoryParams())
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("Expected PHC format hash, got %q", hash)
	}

	if err := Verify(hash, "s3cret-pass"); err != nil {
		t.Errorf("Verify failed for correct password: %v", err)
	}

	if err := Verify(hash, "wrong-pass"); err != ErrMismatch {
		t.Errorf("Expected ErrMismatch for wrong password, got %v", err)
	}
}

func TestVerifyInvalidHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=65536"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.hash, "anything"); err == nil {
				t.Error("Expected error for invalid hash")
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	p1 := Generate(24)
	p2 := Generate(24)

	if len(p1) != 24 {
		t.Errorf("Expected length 24, got %d", len(p1))
	}
	if p1 == p2 {
		t.Error("Expected two generated passwords to differ")
	}

	// Zero length falls back to default
	if got := Generate(0); len(got) != 16 {
		t.Errorf("Expected default length 16, got %d", len(got))
	}
}

func TestMatch(t *testing.T) {
	hash, err := HashWithParams("letmein", LowMemoryParams())
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if !Match(hash, "letmein") {
		t.Error("Expected Match to return true")
	}
	if Match(hash, "letmeout") {
		t.Error("Expected Match to return false")
	}
}
