package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/domain"

	"gorm.io/gorm"
)

// Service enforces the order status workflow and field-ownership rules.
type Service struct {
	orders OrderRepositoryInterface
	users  UserReader
	files  FileReader
}

func NewService(orders OrderRepositoryInterface, users UserReader, files FileReader) *Service {
	return &Service{orders: orders, users: users, files: files}
}

// Create validates the contact fields and persists a new order in status
// "new" with the next sequential order number. Total price stays unset; only
// admin-tier paths may write it.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateOrderRequest) (*domain.Order, error) {
	if strings.TrimSpace(req.CustomerFullName) == "" {
		return nil, fmt.Errorf("%w: customerFullName is required", ErrValidation)
	}
	if strings.TrimSpace(req.CustomerPhoneNumber) == "" {
		return nil, fmt.Errorf("%w: customerPhoneNumber is required", ErrValidation)
	}
	if strings.TrimSpace(req.CustomerAddress) == "" {
		return nil, fmt.Errorf("%w: customerAddress is required", ErrValidation)
	}

	o := &domain.Order{
		OwnerID:              ownerID,
		CustomerFullName:     req.CustomerFullName,
		CustomerPhoneNumber:  req.CustomerPhoneNumber,
		CustomerAddress:      req.CustomerAddress,
		RequiredDeliveryDate: req.RequiredDeliveryDate,
		Description:          req.Description,
		Height:               req.Height,
		Width:                req.Width,
		Notes:                req.Notes,
		Status:               domain.StatusNew,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// UpdateAsOwner applies a partial update to an order the client owns. Absent
// fields are untouched; an explicit empty string on a required contact field
// is rejected.
func (s *Service) UpdateAsOwner(ctx context.Context, orderID, ownerID int64, patch OwnerPatch) (*domain.Order, error) {
	o, err := s.orders.GetByIDAndOwner(ctx, orderID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	fields, err := ownerPatchFields(patch, o)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return o, nil
	}

	if err := s.orders.UpdateFields(ctx, orderID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// UpdateAsAdmin applies a partial update including the admin-only fields.
func (s *Service) UpdateAsAdmin(ctx context.Context, orderID int64, patch AdminPatch) (*domain.OrderWithOwner, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	fields, err := ownerPatchFields(patch.OwnerPatch, o)
	if err != nil {
		return nil, err
	}
	if patch.TotalPrice != nil {
		fields["total_price"] = *patch.TotalPrice
		o.TotalPrice = *patch.TotalPrice
	}
	if patch.Status != nil {
		status := domain.OrderStatus(*patch.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: invalid status value", ErrValidation)
		}
		fields["status"] = string(status)
		o.Status = status
	}

	if len(fields) > 0 {
		if err := s.orders.UpdateFields(ctx, orderID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
	}

	return s.withOwner(ctx, o), nil
}

// SetStatus overwrites the order status. Any enumerated value is accepted
// from the admin tier; the workflow deliberately does not forbid backward
// transitions.
func (s *Service) SetStatus(ctx context.Context, orderID int64, status string) (*domain.OrderWithOwner, error) {
	target := domain.OrderStatus(status)
	if !target.Valid() {
		return nil, fmt.Errorf("%w: invalid status value", ErrValidation)
	}

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := s.orders.UpdateFields(ctx, orderID, map[string]any{"status": string(target)}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	o.Status = target

	return s.withOwner(ctx, o), nil
}

// Confirm is the one status transition a client may trigger on their own
// order: it requests payment.
func (s *Service) Confirm(ctx context.Context, orderID, ownerID int64) error {
	if _, err := s.orders.GetByIDAndOwner(ctx, orderID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.orders.UpdateFields(ctx, orderID, map[string]any{
		"status": string(domain.StatusPaymentRequested),
	})
}

// ListAll returns every order, newest first, with owner projections.
func (s *Service) ListAll(ctx context.Context) ([]*domain.OrderWithOwner, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachOwners(ctx, orders)
}

func (s *Service) ListForOwner(ctx context.Context, ownerID int64) ([]*domain.Order, error) {
	return s.orders.ListByOwner(ctx, ownerID)
}

// GetDetail returns the order with its owner projection and attachments.
func (s *Service) GetDetail(ctx context.Context, orderID int64) (*Detail, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	files, err := s.files.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &Detail{Order: s.withOwner(ctx, o), Files: files}, nil
}

func ownerPatchFields(patch OwnerPatch, o *domain.Order) (map[string]any, error) {
	fields := map[string]any{}

	set := func(col string, p *string, required bool, dst *string) error {
		if p == nil {
			return nil
		}
		if required && strings.TrimSpace(*p) == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrValidation, col)
		}
		fields[col] = *p
		*dst = *p
		return nil
	}

	if err := set("customer_full_name", patch.CustomerFullName, true, &o.CustomerFullName); err != nil {
		return nil, err
	}
	if err := set("customer_phone_number", patch.CustomerPhoneNumber, true, &o.CustomerPhoneNumber); err != nil {
		return nil, err
	}
	if err := set("customer_address", patch.CustomerAddress, true, &o.CustomerAddress); err != nil {
		return nil, err
	}
	if err := set("required_delivery_date", patch.RequiredDeliveryDate, false, &o.RequiredDeliveryDate); err != nil {
		return nil, err
	}
	if err := set("description", patch.Description, false, &o.Description); err != nil {
		return nil, err
	}
	if err := set("height", patch.Height, false, &o.Height); err != nil {
		return nil, err
	}
	if err := set("width", patch.Width, false, &o.Width); err != nil {
		return nil, err
	}
	if err := set("notes", patch.Notes, false, &o.Notes); err != nil {
		return nil, err
	}

	return fields, nil
}

func (s *Service) withOwner(ctx context.Context, o *domain.Order) *domain.OrderWithOwner {
	result := &domain.OrderWithOwner{Order: *o}
	owner, err := s.users.GetByID(ctx, o.OwnerID)
	if err == nil {
		result.Owner = &domain.OwnerSummary{
			ID:            owner.ID,
			FullName:      owner.FullName,
			Handle:        owner.Handle,
			ClientGroupID: owner.ClientGroupID,
		}
	}
	return result
}

func (s *Service) attachOwners(ctx context.Context, orders []*domain.Order) ([]*domain.OrderWithOwner, error) {
	idSet := map[int64]struct{}{}
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		if _, seen := idSet[o.OwnerID]; !seen {
			idSet[o.OwnerID] = struct{}{}
			ids = append(ids, o.OwnerID)
		}
	}

	owners, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.OwnerSummary, len(owners))
	for _, u := range owners {
		byID[u.ID] = &domain.OwnerSummary{
			ID:            u.ID,
			FullName:      u.FullName,
			Handle:        u.Handle,
			ClientGroupID: u.ClientGroupID,
		}
	}

	result := make([]*domain.OrderWithOwner, 0, len(orders))
	for _, o := range orders {
		result = append(result, &domain.OrderWithOwner{Order: *o, Owner: byID[o.OwnerID]})
	}
	return result, nil
}
