package admin

type CreateUserRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	ClientID    string `json:"clientId" binding:"required"`
}

type SetActiveRequest struct {
	// pointer so "false" and "absent" are distinguishable
	IsActive *bool `json:"isActive" binding:"required"`
}
