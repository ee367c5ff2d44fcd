package file

type AttachRequest struct {
	OrderID  int64  `json:"orderId" binding:"required"`
	FilePath string `json:"filePath" binding:"required"`
	Category string `json:"fileCategory" binding:"required"`
	Notes    string `json:"notes,omitempty"`
}
