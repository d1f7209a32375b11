package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	SessionID *uuid.UUID

	// Role is the staff or patient role used for authorization
	// (admin, physio, receptionist, patient).
	Role string

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

// GetUserID implements authorize.ClaimsProvider and reqctx.AuthClaims interface.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetSessionID implements reqctx.AuthClaims interface.
func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

// GetRole implements reqctx.AuthClaims interface.
func (c *Claims) GetRole() string {
	return c.Role
}

// GetTokenType implements reqctx.AuthClaims interface.
func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

// IsExpired implements reqctx.AuthClaims interface.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
