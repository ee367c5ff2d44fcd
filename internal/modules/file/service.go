package file

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/domain"

	"gorm.io/gorm"
)

// Service manages attachment records. The binary upload itself happens
// against the external blob store; only the resulting references pass
// through here.
type Service struct {
	files  FileRepositoryInterface
	orders OrderReader
}

func NewService(files FileRepositoryInterface, orders OrderReader) *Service {
	return &Service{files: files, orders: orders}
}

// Attach records a batch of storage references against their orders. Every
// record must carry a recognized category and reference an existing order;
// the batch is rejected as a whole otherwise.
func (s *Service) Attach(ctx context.Context, uploaderID int64, reqs []AttachRequest) ([]*domain.FileAttachment, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: no file records supplied", ErrValidation)
	}

	attachments := make([]*domain.FileAttachment, 0, len(reqs))
	for _, req := range reqs {
		category := domain.FileCategory(req.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
		}
		if strings.TrimSpace(req.FilePath) == "" {
			return nil, fmt.Errorf("%w: filePath is required", ErrValidation)
		}

		if _, err := s.orders.GetByID(ctx, req.OrderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}

		attachments = append(attachments, &domain.FileAttachment{
			UserID:   uploaderID,
			OrderID:  req.OrderID,
			FilePath: req.FilePath,
			Category: category,
			Notes:    req.Notes,
		})
	}

	if err := s.files.CreateBatch(ctx, attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]*domain.FileAttachment, error) {
	return s.files.ListByOrder(ctx, orderID)
}

// DeleteByReference removes every record for the reference. Idempotent:
// deleting an unknown reference succeeds with zero effect.
func (s *Service) DeleteByReference(ctx context.Context, filePath string) (int64, error) {
	return s.files.DeleteByPath(ctx, filePath)
}
