package inventory

import "errors"

var (
	ErrNotFound          = errors.New("inventory item not found")
	ErrNameTaken         = errors.New("an item with this name already exists")
	ErrInsufficientStock = errors.New("adjustment would make the quantity negative")
)
