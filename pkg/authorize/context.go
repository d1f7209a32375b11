package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/physiofit/clinic_backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// ClaimsProvider is an interface that any claims type can implement
// to provide user identification for authorization.
type ClaimsProvider interface {
	GetUserID() uuid.UUID
}

// SubjectFromContext extracts the GroupSubject (user ID) from context.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil {
		return "", ErrNoSubjectInContext
	}

	userID := claims.GetUserID()
	if userID == uuid.Nil {
		return "", ErrNoSubjectInContext
	}

	return GroupSubject(userID.String()), nil
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only when you're certain the subject exists (e.g., behind auth middleware).
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// UserIDFromContext extracts the user ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	userID := claims.GetUserID()
	if userID == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	return userID, nil
}
