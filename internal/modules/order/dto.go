package order

import "orderdesk/internal/domain"

type CreateOrderRequest struct {
	CustomerFullName     string `json:"customerFullName" binding:"required"`
	CustomerPhoneNumber  string `json:"customerPhoneNumber" binding:"required"`
	CustomerAddress      string `json:"customerAddress" binding:"required"`
	RequiredDeliveryDate string `json:"requiredDeliveryDate,omitempty"`
	Description          string `json:"description,omitempty"`
	Height               string `json:"height,omitempty"`
	Width                string `json:"width,omitempty"`
	Notes                string `json:"notes,omitempty"`
}

// OwnerPatch carries the fields a client may change on their own order.
// Status and total price are deliberately not part of this type: whatever a
// client sends for them is dropped at the HTTP boundary and can never reach
// the store through this path. A nil field is "leave as is".
type OwnerPatch struct {
	CustomerFullName     *string `json:"customerFullName"`
	CustomerPhoneNumber  *string `json:"customerPhoneNumber"`
	CustomerAddress      *string `json:"customerAddress"`
	RequiredDeliveryDate *string `json:"requiredDeliveryDate"`
	Description          *string `json:"description"`
	Height               *string `json:"height"`
	Width                *string `json:"width"`
	Notes                *string `json:"notes"`
}

// AdminPatch additionally covers the admin-only fields.
type AdminPatch struct {
	OwnerPatch
	TotalPrice *string `json:"totalPrice"`
	Status     *string `json:"status"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Detail is an order with its owner projection and attachments.
type Detail struct {
	Order *domain.OrderWithOwner   `json:"order"`
	Files []*domain.FileAttachment `json:"files"`
}
