package file

import (
	"context"

	"orderdesk/internal/domain"
)

// FileRepositoryInterface — only the methods the file service uses.
type FileRepositoryInterface interface {
	CreateBatch(ctx context.Context, files []*domain.FileAttachment) error
	ListByOrder(ctx context.Context, orderID int64) ([]*domain.FileAttachment, error)
	DeleteByPath(ctx context.Context, filePath string) (int64, error)
}

// OrderReader verifies the referenced order exists before attaching.
type OrderReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}
