package repository

import (
	"context"
	"strings"
	"time"

	"orderdesk/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	FullName           string    `gorm:"column:full_name"`
	Handle             string    `gorm:"column:handle;uniqueIndex"`
	PasswordHash       string    `gorm:"column:password_hash"`
	PhoneNumber        *string   `gorm:"column:phone_number"`
	Role               string    `gorm:"column:role"`
	ClientGroupID      *string   `gorm:"column:client_group_id"`
	Active             bool      `gorm:"column:active"`
	MustChangePassword bool      `gorm:"column:must_change_password"`
	ExternalAuthRef    *string   `gorm:"column:external_auth_ref;uniqueIndex"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone, group, extRef string
	if m.PhoneNumber != nil {
		phone = *m.PhoneNumber
	}
	if m.ClientGroupID != nil {
		group = *m.ClientGroupID
	}
	if m.ExternalAuthRef != nil {
		extRef = *m.ExternalAuthRef
	}

	return &domain.User{
		ID:                 m.ID,
		FullName:           m.FullName,
		Handle:             m.Handle,
		PasswordHash:       m.PasswordHash,
		PhoneNumber:        phone,
		Role:               domain.UserRole(m.Role),
		ClientGroupID:      group,
		Active:             m.Active,
		MustChangePassword: m.MustChangePassword,
		ExternalAuthRef:    extRef,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var phone, group, extRef *string
	if u.PhoneNumber != "" {
		v := u.PhoneNumber
		phone = &v
	}
	if u.ClientGroupID != "" {
		v := u.ClientGroupID
		group = &v
	}
	if u.ExternalAuthRef != "" {
		v := u.ExternalAuthRef
		extRef = &v
	}

	return userModel{
		ID:                 u.ID,
		FullName:           u.FullName,
		Handle:             strings.TrimSpace(u.Handle),
		PasswordHash:       u.PasswordHash,
		PhoneNumber:        phone,
		Role:               string(u.Role),
		ClientGroupID:      group,
		Active:             u.Active,
		MustChangePassword: u.MustChangePassword,
		ExternalAuthRef:    extRef,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return translateError(tx.Error)
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByHandle(ctx context.Context, handle string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("handle = ?", strings.TrimSpace(handle)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByHandle(ctx context.Context, handle string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("handle = ?", strings.TrimSpace(handle)).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	return r.db.WithContext(ctx).Save(&m).Error
}

// UpdateFields applies a partial update by column name.
func (r *UserRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the identity. Used to roll back a signup whose verification
// code could not be delivered.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&userModel{}, id).Error
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var rows []userModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	users := make([]*domain.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, toDomainUser(m))
	}
	return users, nil
}

func (r *UserRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []userModel
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	users := make([]*domain.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, toDomainUser(m))
	}
	return users, nil
}
