package file

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

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

// RegisterRoutes — the group must already be gated by Auth; these routes are
// shared between clients and admins.
func (h *Handler) RegisterRoutes(files *gin.RouterGroup, perm func(policy.Operation) gin.HandlerFunc) {
	files.POST("/orders/files", perm(policy.OpFileAttach), h.Attach)
	files.GET("/orders/files/:orderId", perm(policy.OpFileList), h.ListByOrder)
	files.DELETE("/orders/files/*filePath", perm(policy.OpFileDelete), h.DeleteByReference)
}

// Attach accepts either a single file record or an array of them, matching
// what the mobile client sends after uploading to blob storage.
func (h *Handler) Attach(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var reqs []AttachRequest
	if err := json.Unmarshal(body, &reqs); err != nil {
		var single AttachRequest
		if err := json.Unmarshal(body, &single); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
		reqs = []AttachRequest{single}
	}

	attachments, err := h.service.Attach(c.Request.Context(), c.GetInt64("user_id"), reqs)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		default:
			response.Error(c, http.StatusInternalServerError, "ATTACH_FAILED", "Failed to save file records")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"files": attachments})
}

func (h *Handler) ListByOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	files, err := h.service.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch file records")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"files": files})
}

func (h *Handler) DeleteByReference(c *gin.Context) {
	filePath := strings.TrimPrefix(c.Param("filePath"), "/")
	if filePath == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File path is required")
		return
	}

	deleted, err := h.service.DeleteByReference(c.Request.Context(), filePath)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete file records")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}
