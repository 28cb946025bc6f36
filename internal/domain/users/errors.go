package users

import "errors"

var (
	ErrNotFound       = errors.New("user not found")
	ErrInvalidRole    = errors.New("role must be Manager or Employee")
	ErrEmptyName      = errors.New("user name is required")
	ErrManagerMissing = errors.New("referenced manager does not exist")
)
