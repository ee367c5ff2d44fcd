package auth

import (
	"context"

	"orderdesk/internal/domain"
)

// UserRepositoryInterface — only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByHandle(ctx context.Context, handle string) (*domain.User, error)
	ExistsByHandle(ctx context.Context, handle string) (bool, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type jwtService interface {
	GenerateToken(userID int64, handle, role string) (string, error)
}
