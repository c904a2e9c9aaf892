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

func TestAddSession_UnknownHall(t *testing.T) {
	uow := newFakeUoW()
	svc := NewSessionService(uow, testAuditor(), zap.NewNop())

	_, err := svc.AddSession(context.Background(), 5, &request.SessionRequest{
		SessionName: "Evening", StartTime: "18:00", EndTime: "20:00",
	})

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, uow.sessions.rows)
}

func TestSessions_ListActiveByStartTime(t *testing.T) {
	uow := newFakeUoW()
	halls := NewHallService(uow, testAuditor(), zap.NewNop())
	svc := NewSessionService(uow, testAuditor(), zap.NewNop())
	ctx := context.Background()

	hall, err := halls.ConfigureHall(ctx, auditoriumA())
	require.NoError(t, err)

	early, err := svc.AddSession(ctx, hall.HallID, &request.SessionRequest{
		SessionName: "Breakfast", StartTime: "07:00", EndTime: "08:30", Price: 100,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(ctx, hall.Sessions[1].SessionID))

	list, err := svc.ListHallSessions(ctx, hall.HallID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.SessionID, list[0].SessionID)
	assert.Equal(t, "Morning", list[1].SessionName)

	got, err := svc.GetSessionByID(ctx, hall.Sessions[1].SessionID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdateSession(t *testing.T) {
	uow := newFakeUoW()
	halls := NewHallService(uow, testAuditor(), zap.NewNop())
	svc := NewSessionService(uow, testAuditor(), zap.NewNop())
	ctx := context.Background()

	hall, err := halls.ConfigureHall(ctx, auditoriumA())
	require.NoError(t, err)
	id := hall.Sessions[0].SessionID

	updated, err := svc.UpdateSession(ctx, id, &request.SessionRequest{
		SessionName: "Morning", StartTime: "08:30", EndTime: "12:00", Price: 550,
	})
	require.NoError(t, err)
	assert.Equal(t, "08:30", updated.StartTime)
	assert.Equal(t, 550.0, updated.Price)
	assert.True(t, updated.IsActive)

	_, err = svc.UpdateSession(ctx, id, &request.SessionRequest{
		SessionName: "Morning", StartTime: "12:00", EndTime: "08:30",
	})
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
	assert.Contains(t, apperror.FieldsOf(err), "end_time")

	_, err = svc.UpdateSession(ctx, 999, &request.SessionRequest{
		SessionName: "Ghost", StartTime: "08:00", EndTime: "09:00",
	})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = svc.UpdateSession(ctx, id, nil)
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
}
