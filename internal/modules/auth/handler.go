package auth

import (
	"errors"
	"net/http"

	"orderdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signUp", h.SignUp)
		authGroup.POST("/verify", h.Verify)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)
	}
}

// SignUp registers a new client and sends a 2FA code to their phone.
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPhoneAlreadyRegistered):
			response.Error(c, http.StatusConflict, "PHONE_EXISTS", "Phone number already registered")
		case errors.Is(err, ErrCodeDelivery):
			response.Error(c, http.StatusInternalServerError, "SMS_FAILED", "Failed to send verification code")
		default:
			response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Verification code sent",
		"userId":  result.UserID,
		"code":    result.Code,
	})
}

// Verify completes the 2FA flow and returns a session token.
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Verify(c.Request.Context(), req.UserID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCode):
			response.Error(c, http.StatusUnauthorized, "INVALID_CODE", "Invalid or expired verification code")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "VERIFY_FAILED", "Failed to verify")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User.Public(),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Phone number or password is incorrect")
		case errors.Is(err, ErrAccountDeactivated):
			response.Error(c, http.StatusUnauthorized, "ACCOUNT_DEACTIVATED", "Account is deactivated")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User.Public(),
	})
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Handle); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Phone number not found")
		case errors.Is(err, ErrCodeDelivery):
			response.Error(c, http.StatusInternalServerError, "SMS_FAILED", "Failed to send reset code")
		default:
			response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Failed to request password reset")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Reset code sent to your phone"})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Phone number not found")
		case errors.Is(err, ErrInvalidCode):
			response.Error(c, http.StatusUnauthorized, "INVALID_CODE", "Invalid or expired reset code")
		default:
			response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Failed to reset password")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password reset successful"})
}

// UpdateProfile updates the authenticated client's own profile. Registered
// under the client-tier route group.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrPhoneAlreadyRegistered):
			response.Error(c, http.StatusConflict, "PHONE_EXISTS", "Phone number already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user.Public()})
}
