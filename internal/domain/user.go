package domain

import "time"

type UserRole string

const (
	RoleClient     UserRole = "client"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "superAdmin"
)

// AdminTier reports whether the role may perform administration operations.
// superAdmin is a superset of admin for every current operation.
func (r UserRole) AdminTier() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleClient, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

type User struct {
	ID                 int64     `json:"id"`
	FullName           string    `json:"full_name"`
	Handle             string    `json:"handle"` // login handle, derived from the phone number
	PasswordHash       string    `json:"-"`
	PhoneNumber        string    `json:"phone_number,omitempty"`
	Role               UserRole  `json:"role"`
	ClientGroupID      string    `json:"client_group_id,omitempty"`
	Active             bool      `json:"active"`
	MustChangePassword bool      `json:"must_change_password"`
	ExternalAuthRef    string    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserPublic is the projection returned to callers. It never carries the
// password hash or the external auth reference.
type UserPublic struct {
	ID            int64    `json:"id"`
	FullName      string   `json:"full_name"`
	Handle        string   `json:"handle"`
	Role          UserRole `json:"role"`
	ClientGroupID string   `json:"client_group_id,omitempty"`
	Active        bool     `json:"active"`
}

func (u *User) Public() UserPublic {
	return UserPublic{
		ID:            u.ID,
		FullName:      u.FullName,
		Handle:        u.Handle,
		Role:          u.Role,
		ClientGroupID: u.ClientGroupID,
		Active:        u.Active,
	}
}
