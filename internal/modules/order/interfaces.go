package order

import (
	"context"

	"orderdesk/internal/domain"
)

// OrderRepositoryInterface — only the methods the order service uses.
type OrderRepositoryInterface interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Order, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	ListAll(ctx context.Context) ([]*domain.Order, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Order, error)
}

// UserReader resolves owner projections for admin views.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.User, error)
}

// FileReader lists attachments for the order detail view.
type FileReader interface {
	ListByOrder(ctx context.Context, orderID int64) ([]*domain.FileAttachment, error)
}
