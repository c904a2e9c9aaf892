package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"conference-hall/internal/data/entity"
	"conference-hall/internal/dto/request"
	"conference-hall/pkg/apperror"
	"conference-hall/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mapCache is an in-process cache.Cache.
type mapCache struct {
	entries map[string][]byte
	deletes int
}

var _ cache.Cache = (*mapCache)(nil)

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}}
}

func (c *mapCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.deletes++
	return nil
}

func TestMasterData_ListIsCachedUntilWrite(t *testing.T) {
	uow := newFakeUoW()
	uow.seedLookups()
	c := newMapCache()
	svc := NewMasterDataService("room_types", uow, uow.RoomTypes(), c, testAuditor(), zap.NewNop())
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, c.entries, "room_types:active")

	calls := uow.calls
	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, calls, uow.calls, "second list is served from cache")

	created, err := svc.Create(ctx, &request.LookupRequest{Name: "Training Hall"})
	require.NoError(t, err)
	assert.NotContains(t, c.entries, "room_types:active")

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, created.ID, list[1].ID)
}

func TestMasterData_SoftDelete(t *testing.T) {
	uow := newFakeUoW()
	uow.seedLookups()
	svc := NewMasterDataService("booking_statuses", uow, uow.BookingStatuses(), cache.Noop{}, testAuditor(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, entity.BookingStatusRejected))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	got, err := svc.GetByID(ctx, entity.BookingStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, "Rejected", got.Name)
	assert.False(t, got.IsActive)

	active := true
	renamed, err := svc.Update(ctx, entity.BookingStatusRejected, &request.LookupRequest{Name: "Declined", IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, "Declined", renamed.Name)
	assert.True(t, renamed.IsActive)
}

func TestMasterData_Errors(t *testing.T) {
	uow := newFakeUoW()
	svc := NewMasterDataService("room_types", uow, uow.RoomTypes(), cache.Noop{}, testAuditor(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, nil)
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	_, err = svc.Create(ctx, &request.LookupRequest{})
	assert.Contains(t, apperror.FieldsOf(err), "name")
	assert.Zero(t, uow.calls)

	_, err = svc.Update(ctx, 3, &request.LookupRequest{Name: "X"})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = svc.GetByID(ctx, 3)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
