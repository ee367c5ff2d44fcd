package policy

import (
	"testing"

	"orderdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAllowed_AdminTier(t *testing.T) {
	adminOps := []Operation{
		OpOrderListAll, OpOrderDetail, OpOrderAdminEdit, OpOrderSetStatus,
		OpUserCreate, OpUserSetActive, OpUserList,
	}

	for _, op := range adminOps {
		assert.True(t, Allowed(domain.RoleAdmin, op), "admin should be allowed %s", op)
		assert.True(t, Allowed(domain.RoleSuperAdmin, op), "superAdmin should be allowed %s", op)
		assert.False(t, Allowed(domain.RoleClient, op), "client must not be allowed %s", op)
	}
}

func TestAllowed_ClientTier(t *testing.T) {
	clientOps := []Operation{
		OpOrderOwnCreate, OpOrderOwnList, OpOrderOwnEdit, OpOrderOwnConfirm, OpProfileEdit,
	}

	for _, op := range clientOps {
		assert.True(t, Allowed(domain.RoleClient, op), "client should be allowed %s", op)
		assert.False(t, Allowed(domain.RoleAdmin, op), "admin must not be allowed %s", op)
		assert.False(t, Allowed(domain.RoleSuperAdmin, op), "superAdmin must not be allowed %s", op)
	}
}

func TestAllowed_FileOps_AnyAuthenticated(t *testing.T) {
	for _, op := range []Operation{OpFileAttach, OpFileList, OpFileDelete} {
		assert.True(t, Allowed(domain.RoleClient, op))
		assert.True(t, Allowed(domain.RoleAdmin, op))
		assert.True(t, Allowed(domain.RoleSuperAdmin, op))
	}
}

func TestAllowed_UnknownOperationDenied(t *testing.T) {
	assert.False(t, Allowed(domain.RoleSuperAdmin, Operation("order:drop_table")))
}

func TestAllowed_UnknownRoleDenied(t *testing.T) {
	assert.False(t, Allowed(domain.UserRole("manager"), OpOrderListAll))
}
