package domain

import "time"

type OrderStatus string

const (
	StatusNew                OrderStatus = "new"
	StatusWaitingForApproval OrderStatus = "waiting_for_approval"
	StatusInProgress         OrderStatus = "in_progress"
	StatusPaymentRequested   OrderStatus = "payment_requested"
	StatusDone               OrderStatus = "done"
	StatusDelayed            OrderStatus = "delayed"
	StatusDeclined           OrderStatus = "declined"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusWaitingForApproval, StatusInProgress,
		StatusPaymentRequested, StatusDone, StatusDelayed, StatusDeclined:
		return true
	}
	return false
}

type Order struct {
	ID                  int64       `json:"id"`
	OrderNumber         int64       `json:"order_number"` // sequential display number
	OwnerID             int64       `json:"owner_id"`
	CustomerFullName    string      `json:"customer_full_name"`
	CustomerPhoneNumber string      `json:"customer_phone_number"`
	CustomerAddress     string      `json:"customer_address"`
	Status              OrderStatus `json:"status"`
	TotalPrice          string      `json:"total_price,omitempty"` // admin-tier only
	RequiredDeliveryDate string     `json:"required_delivery_date,omitempty"`
	Description         string      `json:"description,omitempty"`
	Height              string      `json:"height,omitempty"`
	Width               string      `json:"width,omitempty"`
	Notes               string      `json:"notes,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// OwnerSummary is the identity projection attached to admin order views.
type OwnerSummary struct {
	ID            int64  `json:"id"`
	FullName      string `json:"full_name"`
	Handle        string `json:"handle"`
	ClientGroupID string `json:"client_group_id,omitempty"`
}

type OrderWithOwner struct {
	Order
	Owner *OwnerSummary `json:"owner,omitempty"`
}
