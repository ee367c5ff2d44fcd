package order

import (
	"errors"
	"net/http"
	"strconv"

	"orderdesk/internal/pkg/policy"
	"orderdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler exposes the order workflow over HTTP: admin-tier routes under
// /admin/orders, client-tier routes under /clients/orders.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes — the group must already be gated by Auth; each route
// carries its own permission from the policy table.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup, perm func(policy.Operation) gin.HandlerFunc) {
	admin.GET("/orders", perm(policy.OpOrderListAll), h.ListAll)
	admin.GET("/orders/:id", perm(policy.OpOrderDetail), h.GetDetail)
	admin.PUT("/orders/:id", perm(policy.OpOrderAdminEdit), h.UpdateAsAdmin)
	admin.PATCH("/orders/:id/status", perm(policy.OpOrderSetStatus), h.SetStatus)
}

// RegisterClientRoutes — the group must already be gated by Auth; each route
// carries its own permission from the policy table.
func (h *Handler) RegisterClientRoutes(clients *gin.RouterGroup, perm func(policy.Operation) gin.HandlerFunc) {
	clients.GET("/orders", perm(policy.OpOrderOwnList), h.ListOwn)
	clients.POST("/orders", perm(policy.OpOrderOwnCreate), h.Create)
	clients.PUT("/orders/:id", perm(policy.OpOrderOwnEdit), h.UpdateAsOwner)
	clients.PUT("/orders/:id/confirm", perm(policy.OpOrderOwnConfirm), h.Confirm)
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Missing required fields: customerFullName, customerPhoneNumber, customerAddress")
		return
	}

	o, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create order")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": o})
}

func (h *Handler) ListOwn(c *gin.Context) {
	orders, err := h.service.ListForOwner(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) UpdateAsOwner(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var patch OwnerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.UpdateAsOwner(c.Request.Context(), id, c.GetInt64("user_id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update order")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Confirm(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CONFIRM_FAILED", "Failed to confirm order")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Payment requested"})
}

func (h *Handler) ListAll(c *gin.Context) {
	orders, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to fetch orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) GetDetail(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DETAIL_FAILED", "Failed to fetch order details")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"order": detail.Order,
		"files": detail.Files,
	})
}

func (h *Handler) UpdateAsAdmin(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var patch AdminPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.UpdateAsAdmin(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update order")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": o})
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}

	o, err := h.service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "STATUS_FAILED", "Failed to change order status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": o})
}
