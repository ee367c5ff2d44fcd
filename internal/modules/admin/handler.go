package admin

import (
	"errors"
	"net/http"
	"strconv"

	"orderdesk/internal/pkg/policy"
	"orderdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes — the group must already be gated by Auth; each route
// carries its own permission from the policy table.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup, perm func(policy.Operation) gin.HandlerFunc) {
	admin.GET("/users", perm(policy.OpUserList), h.ListUsers)
	admin.POST("/users", perm(policy.OpUserCreate), h.CreateUser)
	admin.PUT("/users/:id/status", perm(policy.OpUserSetActive), h.SetUserActive)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Missing required fields: fullName, phoneNumber, password, clientId")
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHandleAlreadyExists):
			response.Error(c, http.StatusConflict, "USER_EXISTS", "Phone number already registered")
		case errors.Is(err, ErrExternalCreate):
			response.Error(c, http.StatusBadGateway, "EXTERNAL_AUTH_FAILED", "Failed to register user with auth provider")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user.Public()})
}

func (h *Handler) SetUserActive(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "isActive must be a boolean value")
		return
	}

	user, err := h.service.SetUserActive(c.Request.Context(), c.GetInt64("user_id"), userID, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfBlock):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot block or unblock your own account")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update user status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user.Public()})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}
