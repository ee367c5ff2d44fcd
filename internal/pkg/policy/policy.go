// Package policy is the single place that maps roles to allowed operations.
// Handlers never re-implement role checks; they gate routes through
// middleware.RequirePermission with an Operation from this table.
package policy

import "orderdesk/internal/domain"

type Operation string

const (
	OpOrderListAll    Operation = "order:list_all"
	OpOrderDetail     Operation = "order:detail"
	OpOrderAdminEdit  Operation = "order:admin_edit"
	OpOrderSetStatus  Operation = "order:set_status"
	OpUserCreate      Operation = "user:create"
	OpUserSetActive   Operation = "user:set_active"
	OpUserList        Operation = "user:list"
	OpOrderOwnCreate  Operation = "order:own_create"
	OpOrderOwnList    Operation = "order:own_list"
	OpOrderOwnEdit    Operation = "order:own_edit"
	OpOrderOwnConfirm Operation = "order:own_confirm"
	OpProfileEdit     Operation = "profile:edit"
	OpFileAttach      Operation = "file:attach"
	OpFileList        Operation = "file:list"
	OpFileDelete      Operation = "file:delete"
)

var adminTier = []domain.UserRole{domain.RoleAdmin, domain.RoleSuperAdmin}
var clientOnly = []domain.UserRole{domain.RoleClient}
var anyAuthenticated = []domain.UserRole{domain.RoleClient, domain.RoleAdmin, domain.RoleSuperAdmin}

var table = map[Operation][]domain.UserRole{
	OpOrderListAll:   adminTier,
	OpOrderDetail:    adminTier,
	OpOrderAdminEdit: adminTier,
	OpOrderSetStatus: adminTier,
	OpUserCreate:     adminTier,
	OpUserSetActive:  adminTier,
	OpUserList:       adminTier,

	OpOrderOwnCreate:  clientOnly,
	OpOrderOwnList:    clientOnly,
	OpOrderOwnEdit:    clientOnly,
	OpOrderOwnConfirm: clientOnly,
	OpProfileEdit:     clientOnly,

	OpFileAttach: anyAuthenticated,
	OpFileList:   anyAuthenticated,
	OpFileDelete: anyAuthenticated,
}

// Allowed reports whether the role may perform the operation. Unknown
// operations are denied. Object-level ownership is checked separately by the
// order service; this gate only decides role eligibility.
func Allowed(role domain.UserRole, op Operation) bool {
	roles, ok := table[op]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
