package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrUnknownRole      = errors.New("unknown role")
	ErrSelfDelete       = errors.New("cannot delete your own account")
)
