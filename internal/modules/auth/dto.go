package auth

type SignUpRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	ClientID    string `json:"clientId" binding:"required"`
}

type VerifyRequest struct {
	UserID int64  `json:"userId" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

type LoginRequest struct {
	Handle   string `json:"phoneNumber" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Handle string `json:"phoneNumber" binding:"required"`
}

type ResetPasswordRequest struct {
	Handle      string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName,omitempty"`
	Handle   string `json:"phoneNumber,omitempty"`
}
