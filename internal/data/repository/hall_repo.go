package repository

import (
	"context"
	"fmt"

	"conference-hall/internal/data/entity"
	"conference-hall/pkg/database"

	"go.uber.org/zap"
)

type ConferenceHallRepository interface {
	Repository[entity.ConferenceHall]
	// CreateWithSessions inserts the hall and hall.Sessions as one commit
	// boundary. An ambient transaction in ctx is joined, not committed.
	CreateWithSessions(ctx context.Context, hall *entity.ConferenceHall) error
}

type conferenceHallRepository struct {
	*crudRepository[entity.ConferenceHall]
	sessions SessionRepository
}

func NewConferenceHallRepository(db database.PgxIface, sessions SessionRepository, log *zap.Logger) ConferenceHallRepository {
	return &conferenceHallRepository{
		crudRepository: newCrudRepository(db, log, hallTable),
		sessions:       sessions,
	}
}

func (r *conferenceHallRepository) CreateWithSessions(ctx context.Context, hall *entity.ConferenceHall) error {
	if hall == nil {
		return fmt.Errorf("create hall with sessions: nil hall")
	}

	_, ambient := database.TxFromContext(ctx)

	err := database.WithinTx(ctx, r.db, func(ctx context.Context) error {
		if err := r.Add(ctx, hall); err != nil {
			return err
		}
		for _, session := range hall.Sessions {
			session.HallID = hall.HallID
			if err := r.sessions.Add(ctx, session); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to create hall with sessions",
			zap.Error(err),
			zap.String("hall_name", hall.HallName),
			zap.Int("session_count", len(hall.Sessions)),
			zap.Bool("ambient_tx", ambient),
		)
		return fmt.Errorf("create hall %s with %d sessions: %w", hall.HallName, len(hall.Sessions), err)
	}

	r.log.Info("Hall created with sessions",
		zap.Int64("hall_id", hall.HallID),
		zap.Int("session_count", len(hall.Sessions)),
		zap.Bool("ambient_tx", ambient),
	)
	return nil
}

var hallTable = table[entity.ConferenceHall]{
	name: "conference_halls",
	key:  "hall_id",
	columns: withAudit(
		"hall_name", "hall_name_en", "hall_name_hi", "capacity", "location", "floor",
		"region_id", "location_id", "is_approval_required", "status",
	),
	values: func(h *entity.ConferenceHall) []any {
		return append([]any{
			h.HallName, h.HallNameEn, h.HallNameHi, h.Capacity, h.Location, h.Floor,
			h.RegionID, h.LocationID, h.IsApprovalRequired, h.Status,
		}, auditValues(&h.Audit)...)
	},
	scan: func(row scanner) (*entity.ConferenceHall, error) {
		var h entity.ConferenceHall
		dest := append([]any{
			&h.HallID, &h.HallName, &h.HallNameEn, &h.HallNameHi, &h.Capacity, &h.Location, &h.Floor,
			&h.RegionID, &h.LocationID, &h.IsApprovalRequired, &h.Status,
		}, auditDest(&h.Audit)...)
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		return &h, nil
	},
	id:    func(h *entity.ConferenceHall) int64 { return h.HallID },
	setID: func(h *entity.ConferenceHall, id int64) { h.HallID = id },
}
