package domain

import "time"

type FileCategory string

const (
	FileCategoryPayment FileCategory = "payment"
	FileCategoryWork    FileCategory = "work"
)

func (c FileCategory) Valid() bool {
	return c == FileCategoryPayment || c == FileCategoryWork
}

// FileAttachment links an externally stored blob to an order. The binary
// itself lives in the blob store; this record only carries the reference.
type FileAttachment struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"` // uploader
	OrderID   int64        `json:"order_id"`
	FilePath  string       `json:"file_path"` // opaque storage reference
	Category  FileCategory `json:"category"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
