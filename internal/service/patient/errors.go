package patient

import "errors"

var (
	ErrNotFound        = errors.New("patient not found")
	ErrEmailTaken      = errors.New("a patient with this email already exists")
	ErrNoEncryptionKey = errors.New("encryption key not configured")
)
