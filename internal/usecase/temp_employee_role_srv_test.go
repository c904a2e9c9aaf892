package usecase

import (
	"context"
	"testing"

	"conference-hall/internal/dto/request"
	"conference-hall/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTempEmployeeRoles_Lifecycle(t *testing.T) {
	uow := newFakeUoW()
	svc := NewTempEmployeeRoleService(uow, testAuditor(), zap.NewNop())
	ctx := context.Background()

	first, err := svc.Create(ctx, &request.TempEmployeeRoleRequest{EmpNo: "60020656", RoleID: 1234, RegionID: 1})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &request.TempEmployeeRoleRequest{EmpNo: "60031200", RoleID: 4321, IsAllowWrite: true})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	found, err := svc.Search(ctx, "0312")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "60031200", found[0].EmpNo)

	updated, err := svc.Update(ctx, first.ID, &request.TempEmployeeRoleRequest{EmpNo: "60020656", RoleID: 1234, IsAllowWrite: true})
	require.NoError(t, err)
	assert.True(t, updated.IsAllowWrite)
	assert.True(t, updated.IsActive, "omitted is_active keeps the current flag")

	require.NoError(t, svc.Delete(ctx, second.ID))

	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first.ID, all[0].ID)

	got, err := svc.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestTempEmployeeRoles_Errors(t *testing.T) {
	uow := newFakeUoW()
	svc := NewTempEmployeeRoleService(uow, testAuditor(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, nil)
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	_, err = svc.Create(ctx, &request.TempEmployeeRoleRequest{RoleID: 1})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
	assert.Contains(t, apperror.FieldsOf(err), "emp_no")
	assert.Zero(t, uow.calls)

	_, err = svc.Update(ctx, 12, &request.TempEmployeeRoleRequest{EmpNo: "1"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, uow.roles.rows)

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(svc.Delete(ctx, 12)))

	_, err = svc.GetByID(ctx, 12)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
