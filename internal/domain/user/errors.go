package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("user with this email already exists")
	ErrAdminAccessRequired = errors.New("admin access required")
)
