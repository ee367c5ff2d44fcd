package repository

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderModel struct {
	ID                   int64     `gorm:"column:id;primaryKey"`
	OrderNumber          int64     `gorm:"column:order_number;uniqueIndex"`
	OwnerID              int64     `gorm:"column:owner_id;index"`
	CustomerFullName     string    `gorm:"column:customer_full_name"`
	CustomerPhoneNumber  string    `gorm:"column:customer_phone_number"`
	CustomerAddress      string    `gorm:"column:customer_address"`
	Status               string    `gorm:"column:status"`
	TotalPrice           *string   `gorm:"column:total_price"`
	RequiredDeliveryDate *string   `gorm:"column:required_delivery_date"`
	Description          *string   `gorm:"column:description"`
	Height               *string   `gorm:"column:height"`
	Width                *string   `gorm:"column:width"`
	Notes                *string   `gorm:"column:notes"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "orders" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ptrOrNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func toDomainOrder(m orderModel) *domain.Order {
	return &domain.Order{
		ID:                   m.ID,
		OrderNumber:          m.OrderNumber,
		OwnerID:              m.OwnerID,
		CustomerFullName:     m.CustomerFullName,
		CustomerPhoneNumber:  m.CustomerPhoneNumber,
		CustomerAddress:      m.CustomerAddress,
		Status:               domain.OrderStatus(m.Status),
		TotalPrice:           strOrEmpty(m.TotalPrice),
		RequiredDeliveryDate: strOrEmpty(m.RequiredDeliveryDate),
		Description:          strOrEmpty(m.Description),
		Height:               strOrEmpty(m.Height),
		Width:                strOrEmpty(m.Width),
		Notes:                strOrEmpty(m.Notes),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func toOrderModel(o *domain.Order) orderModel {
	return orderModel{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		OwnerID:              o.OwnerID,
		CustomerFullName:     o.CustomerFullName,
		CustomerPhoneNumber:  o.CustomerPhoneNumber,
		CustomerAddress:      o.CustomerAddress,
		Status:               string(o.Status),
		TotalPrice:           ptrOrNil(o.TotalPrice),
		RequiredDeliveryDate: ptrOrNil(o.RequiredDeliveryDate),
		Description:          ptrOrNil(o.Description),
		Height:               ptrOrNil(o.Height),
		Width:                ptrOrNil(o.Width),
		Notes:                ptrOrNil(o.Notes),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

// createAttempts bounds the retries when two inserts race for the same
// order number.
const createAttempts = 3

// Create persists a new order and assigns the next sequential order number.
// MAX+1 is read inside the insert transaction; under READ COMMITTED two
// concurrent creates can still read the same max, so the unique index on
// order_number turns the loser into a constraint failure and the assignment
// is retried with a fresh read.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		err = r.createOnce(ctx, o)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

func (r *OrderRepository) createOnce(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxNumber int64
		if err := tx.Model(&orderModel{}).
			Select("COALESCE(MAX(order_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}

		m := toOrderModel(o)
		m.OrderNumber = maxNumber + 1
		if err := tx.Create(&m).Error; err != nil {
			return translateError(err)
		}
		*o = *toDomainOrder(m)
		return nil
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var m orderModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

func (r *OrderRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Order, error) {
	var m orderModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

// UpdateFields applies a partial update by column name in a single
// find-and-update, which is the unit of atomicity the design relies on.
func (r *OrderRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&orderModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	var rows []orderModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	orders := make([]*domain.Order, 0, len(rows))
	for _, m := range rows {
		orders = append(orders, toDomainOrder(m))
	}
	return orders, nil
}

func (r *OrderRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Order, error) {
	var rows []orderModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	orders := make([]*domain.Order, 0, len(rows))
	for _, m := range rows {
		orders = append(orders, toDomainOrder(m))
	}
	return orders, nil
}
