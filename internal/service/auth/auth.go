package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/physiofit/clinic_backend/config"
	"github.com/physiofit/clinic_backend/internal/repo"
	entuser "github.com/physiofit/clinic_backend/internal/repo/user"
	pasetotoken "github.com/physiofit/clinic_backend/pkg/paseto"
	"github.com/physiofit/clinic_backend/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (*repo.User, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.EmailEQ(email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Status == entuser.StatusSuspended {
		return nil, ErrAccountSuspended
	}
	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	// Reset failure counters
	now := time.Now()
	s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(now).
		Save(ctx)

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue a new access token only; the refresh token stays until logout
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.Role, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's side
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Me
// ---------------------------------------------------------------------------

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	role := string(u.Role)
	access, err := s.paseto.IssueAccess(u.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts)

	if attempts >= maxLoginAttempts {
		lockUntil := time.Now().Add(accountLockMins * time.Minute)
		upd = upd.SetLockedUntil(lockUntil)
	}
	upd.Save(ctx)
}
