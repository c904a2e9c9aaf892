package repository

import (
	"context"
	"time"

	"conference-hall/internal/data/entity"
	"conference-hall/pkg/database"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Repository[entity.ConferenceHallSession]
	// ListByHall returns every session of the hall, ordered by start time.
	ListByHall(ctx context.Context, hallID int64) ([]*entity.ConferenceHallSession, error)
}

type sessionRepository struct {
	*crudRepository[entity.ConferenceHallSession]
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		crudRepository: newCrudRepository(db, log, sessionTable),
	}
}

func (r *sessionRepository) ListByHall(ctx context.Context, hallID int64) ([]*entity.ConferenceHallSession, error) {
	return r.list(ctx, "hall_id = $1", "start_time, session_id", hallID)
}

var sessionColumns = withAudit(
	"hall_id", "session_name", "session_en", "session_hi",
	"start_time", "end_time", "price", "status",
)

var sessionTable = table[entity.ConferenceHallSession]{
	name:    "conference_hall_sessions",
	key:     "session_id",
	columns: sessionColumns,
	values: func(s *entity.ConferenceHallSession) []any {
		return append([]any{
			s.HallID, s.SessionName, s.SessionEn, s.SessionHi,
			toPgTime(s.StartTime), toPgTime(s.EndTime), s.Price, s.Status,
		}, auditValues(&s.Audit)...)
	},
	scan: func(row scanner) (*entity.ConferenceHallSession, error) {
		var s entity.ConferenceHallSession
		var start, end pgtype.Time
		dest := append([]any{
			&s.SessionID, &s.HallID, &s.SessionName, &s.SessionEn, &s.SessionHi,
			&start, &end, &s.Price, &s.Status,
		}, auditDest(&s.Audit)...)
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		s.StartTime = fromPgTime(start)
		s.EndTime = fromPgTime(end)
		return &s, nil
	},
	id:    func(s *entity.ConferenceHallSession) int64 { return s.SessionID },
	setID: func(s *entity.ConferenceHallSession, id int64) { s.SessionID = id },
}

func toPgTime(t entity.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) entity.TimeOfDay {
	if !t.Valid {
		return 0
	}
	return entity.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}
