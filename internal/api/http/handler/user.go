package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/internal/service/audit"
	"github.com/physiofit/clinic_backend/internal/service/user"
)

type UserHandler struct {
	svc   user.Service
	audit audit.Service
}

func NewUserHandler(svc user.Service, auditSvc audit.Service) *UserHandler {
	return &UserHandler{svc: svc, audit: auditSvc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrPasswordTooShort),
		errors.Is(err, user.ErrUnknownRole):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrSelfDelete):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int     `query:"page"`
		PerPage int     `query:"per_page"`
		Role    *string `query:"role"`
		Status  *string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), user.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Role:    q.Role,
		Status:  q.Status,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, result)
}

// GET /users/:id
func (h *UserHandler) GetByID(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	u, err := h.svc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// POST /users
func (h *UserHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Email     string  `json:"email"`
		Phone     *string `json:"phone"`
		Password  string  `json:"password"`
		Role      string  `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	u, err := h.svc.Create(c.Context(), user.CreateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		Password:  body.Password,
		Role:      body.Role,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "create", "user", u.ID, map[string]any{
		"email": u.Email,
		"role":  u.Role,
	})
	return created(c, u)
}

// PATCH /users/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
		Status    *string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), userID, user.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Status:    body.Status,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "update", "user", u.ID, nil)
	return ok(c, u)
}

// POST /users/:id/role
func (h *UserHandler) ChangeRole(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.ChangeRole(c.Context(), userID, body.Role)
	if err != nil {
		return mapUserError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "change_role", "user", u.ID, map[string]any{
		"role": u.Role,
	})
	return ok(c, u)
}

// POST /users/:id/password
func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.ChangePassword(c.Context(), userID, body.Password); err != nil {
		return mapUserError(c, err)
	}

	h.audit.Record(c.Context(), actorID(c), "change_password", "user", userID, nil)
	return noContent(c)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	actor := actorID(c)
	if actor == nil {
		return unauthorized(c)
	}

	if err := h.svc.Delete(c.Context(), *actor, userID); err != nil {
		return mapUserError(c, err)
	}

	h.audit.Record(c.Context(), actor, "delete", "user", userID, nil)
	return noContent(c)
}
