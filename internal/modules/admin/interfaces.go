package admin

import (
	"context"

	"orderdesk/internal/domain"
)

// UserRepositoryInterface — only the methods the admin service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByHandle(ctx context.Context, handle string) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	List(ctx context.Context) ([]*domain.User, error)
}
