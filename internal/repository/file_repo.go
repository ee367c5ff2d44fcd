package repository

import (
	"context"
	"time"

	"orderdesk/internal/domain"

	"gorm.io/gorm"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

type fileModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id"`
	OrderID   int64     `gorm:"column:order_id;index"`
	FilePath  string    `gorm:"column:file_path;index"`
	Category  string    `gorm:"column:category"`
	Notes     *string   `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (fileModel) TableName() string { return "files" }

func toDomainFile(m fileModel) *domain.FileAttachment {
	return &domain.FileAttachment{
		ID:        m.ID,
		UserID:    m.UserID,
		OrderID:   m.OrderID,
		FilePath:  m.FilePath,
		Category:  domain.FileCategory(m.Category),
		Notes:     strOrEmpty(m.Notes),
		CreatedAt: m.CreatedAt,
	}
}

func toFileModel(f *domain.FileAttachment) fileModel {
	return fileModel{
		ID:        f.ID,
		UserID:    f.UserID,
		OrderID:   f.OrderID,
		FilePath:  f.FilePath,
		Category:  string(f.Category),
		Notes:     ptrOrNil(f.Notes),
		CreatedAt: f.CreatedAt,
	}
}

func (r *FileRepository) Create(ctx context.Context, f *domain.FileAttachment) error {
	m := toFileModel(f)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFile(m)
	return nil
}

func (r *FileRepository) CreateBatch(ctx context.Context, files []*domain.FileAttachment) error {
	if len(files) == 0 {
		return nil
	}
	rows := make([]fileModel, 0, len(files))
	for _, f := range files {
		rows = append(rows, toFileModel(f))
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return err
	}
	for i := range rows {
		*files[i] = *toDomainFile(rows[i])
	}
	return nil
}

func (r *FileRepository) ListByOrder(ctx context.Context, orderID int64) ([]*domain.FileAttachment, error) {
	var rows []fileModel
	tx := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	files := make([]*domain.FileAttachment, 0, len(rows))
	for _, m := range rows {
		files = append(files, toDomainFile(m))
	}
	return files, nil
}

// DeleteByPath removes every record pointing at the reference. Deleting a
// reference with no records is not an error.
func (r *FileRepository) DeleteByPath(ctx context.Context, filePath string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("file_path = ?", filePath).Delete(&fileModel{})
	return tx.RowsAffected, tx.Error
}
