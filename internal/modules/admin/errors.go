package admin

import "errors"

var (
	ErrHandleAlreadyExists = errors.New("handle already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrSelfBlock           = errors.New("cannot block or unblock your own account")
	ErrExternalCreate      = errors.New("failed to create external auth user")
)
