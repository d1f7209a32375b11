package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/physiofit/clinic_backend/internal/service/auth"
	pasetotoken "github.com/physiofit/clinic_backend/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return unauthorized(c)
	case errors.Is(err, auth.ErrAccountSuspended),
		errors.Is(err, auth.ErrAccountLocked):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound):
		return unauthorized(c)
	case errors.Is(err, auth.ErrUserNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// GET /auth/me
func (h *AuthHandler) Me(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.Me(c.Context(), claims.UserID)
	if err != nil {
		return mapAuthError(c, err)
	}
	return ok(c, u)
}
