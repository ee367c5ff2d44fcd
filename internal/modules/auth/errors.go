package auth

import "errors"

var (
	ErrPhoneAlreadyRegistered = errors.New("phone number already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountDeactivated     = errors.New("account is deactivated")
	ErrInvalidCode            = errors.New("invalid or expired verification code")
	ErrUserNotFound           = errors.New("user not found")
	ErrCodeDelivery           = errors.New("failed to deliver verification code")
)
