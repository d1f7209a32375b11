package catalog

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrNameTaken       = errors.New("name already in use")
	ErrInvalidPrice    = errors.New("unit price must not be negative")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)
