package repository

import (
	"context"
	"fmt"
	"strings"

	"conference-hall/internal/data/entity"
	"conference-hall/pkg/database"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// BookingRepository eager-loads hall, room type, status and the booking
// sessions (with their session and status) on GetByID and GetAll.
type BookingRepository interface {
	Repository[entity.ConferenceHallBooking]
}

type BookingSessionRepository interface {
	Repository[entity.ConferenceHallBookingSession]
	ListByBooking(ctx context.Context, bookingID int64) ([]*entity.ConferenceHallBookingSession, error)
}

type bookingRepository struct {
	*crudRepository[entity.ConferenceHallBooking]
	halls     *crudRepository[entity.ConferenceHall]
	roomTypes *crudRepository[entity.RoomType]
	statuses  *crudRepository[entity.BookingStatus]
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		crudRepository: newCrudRepository(db, log, bookingTable),
		halls:          newCrudRepository(db, log, hallTable),
		roomTypes:      newCrudRepository(db, log, lookupTable[entity.RoomType]("room_types")),
		statuses:       newCrudRepository(db, log, lookupTable[entity.BookingStatus]("booking_statuses")),
	}
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*entity.ConferenceHallBooking, error) {
	booking, err := r.crudRepository.GetByID(ctx, id)
	if err != nil || booking == nil {
		return booking, err
	}

	if err := r.include(ctx, []*entity.ConferenceHallBooking{booking}); err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]*entity.ConferenceHallBooking, error) {
	bookings, err := r.crudRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.include(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// include resolves navigations with a fixed number of queries per call.
func (r *bookingRepository) include(ctx context.Context, bookings []*entity.ConferenceHallBooking) error {
	if len(bookings) == 0 {
		return nil
	}

	bookingIDs := make([]int64, 0, len(bookings))
	hallIDs := make([]int64, 0, len(bookings))
	seenHall := make(map[int64]bool)
	for _, b := range bookings {
		bookingIDs = append(bookingIDs, b.BookingID)
		if !seenHall[b.HallID] {
			seenHall[b.HallID] = true
			hallIDs = append(hallIDs, b.HallID)
		}
	}

	halls, err := r.halls.list(ctx, "hall_id = ANY($1)", "", hallIDs)
	if err != nil {
		return fmt.Errorf("include halls: %w", err)
	}
	roomTypes, err := r.roomTypes.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("include room types: %w", err)
	}
	statuses, err := r.statuses.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("include booking statuses: %w", err)
	}
	sessions, err := r.sessionsFor(ctx, bookingIDs)
	if err != nil {
		return fmt.Errorf("include booking sessions: %w", err)
	}

	hallByID := make(map[int64]*entity.ConferenceHall, len(halls))
	for _, h := range halls {
		hallByID[h.HallID] = h
	}
	roomTypeByID := make(map[int64]*entity.RoomType, len(roomTypes))
	for _, rt := range roomTypes {
		roomTypeByID[rt.ID] = rt
	}
	statusByID := make(map[int64]*entity.BookingStatus, len(statuses))
	for _, st := range statuses {
		statusByID[st.ID] = st
	}
	sessionsByBooking := make(map[int64][]*entity.ConferenceHallBookingSession)
	for _, bs := range sessions {
		bs.StatusInfo = statusByID[bs.Status]
		sessionsByBooking[bs.BookingID] = append(sessionsByBooking[bs.BookingID], bs)
	}

	for _, b := range bookings {
		b.Hall = hallByID[b.HallID]
		b.RoomType = roomTypeByID[b.RoomTypeID]
		b.StatusInfo = statusByID[b.Status]
		b.Sessions = sessionsByBooking[b.BookingID]
	}
	return nil
}

var bookingSessionWithSessionSQL = fmt.Sprintf(`
	SELECT %s, %s
	FROM conference_hall_booking_sessions bs
	JOIN conference_hall_sessions s ON s.session_id = bs.session_id
	WHERE bs.booking_id = ANY($1)
	ORDER BY bs.booking_id, bs.id
`,
	prefixed("bs", bookingSessionTable.key, bookingSessionTable.columns),
	prefixed("s", sessionTable.key, sessionTable.columns),
)

func (r *bookingRepository) sessionsFor(ctx context.Context, bookingIDs []int64) ([]*entity.ConferenceHallBookingSession, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, bookingSessionWithSessionSQL, bookingIDs)
	if err != nil {
		r.log.Error("Failed to load booking sessions", zap.Error(err), zap.Int("booking_count", len(bookingIDs)))
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ConferenceHallBookingSession
	for rows.Next() {
		var bs entity.ConferenceHallBookingSession
		var s entity.ConferenceHallSession
		var start, end pgtype.Time

		dest := []any{&bs.ID, &bs.BookingID, &bs.SessionID, &bs.Status}
		dest = append(dest, auditDest(&bs.Audit)...)
		dest = append(dest,
			&s.SessionID, &s.HallID, &s.SessionName, &s.SessionEn, &s.SessionHi,
			&start, &end, &s.Price, &s.Status,
		)
		dest = append(dest, auditDest(&s.Audit)...)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan booking session row: %w", err)
		}
		s.StartTime = fromPgTime(start)
		s.EndTime = fromPgTime(end)
		bs.Session = &s
		out = append(out, &bs)
	}
	return out, rows.Err()
}

type bookingSessionRepository struct {
	*crudRepository[entity.ConferenceHallBookingSession]
}

func NewBookingSessionRepository(db database.PgxIface, log *zap.Logger) BookingSessionRepository {
	return &bookingSessionRepository{
		crudRepository: newCrudRepository(db, log, bookingSessionTable),
	}
}

func (r *bookingSessionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]*entity.ConferenceHallBookingSession, error) {
	return r.list(ctx, "booking_id = $1", "", bookingID)
}

func prefixed(alias, key string, cols []string) string {
	out := make([]string, 0, len(cols)+1)
	out = append(out, alias+"."+key)
	for _, c := range cols {
		out = append(out, alias+"."+c)
	}
	return strings.Join(out, ", ")
}

var bookingTable = table[entity.ConferenceHallBooking]{
	name: "conference_hall_bookings",
	key:  "booking_id",
	columns: withAudit(
		"hall_id", "room_type_id", "status", "emp_no", "booking_date",
		"purpose", "participant_count", "remarks",
	),
	values: func(b *entity.ConferenceHallBooking) []any {
		return append([]any{
			b.HallID, b.RoomTypeID, b.Status, b.EmpNo, b.BookingDate,
			b.Purpose, b.ParticipantCount, b.Remarks,
		}, auditValues(&b.Audit)...)
	},
	scan: func(row scanner) (*entity.ConferenceHallBooking, error) {
		var b entity.ConferenceHallBooking
		dest := append([]any{
			&b.BookingID, &b.HallID, &b.RoomTypeID, &b.Status, &b.EmpNo, &b.BookingDate,
			&b.Purpose, &b.ParticipantCount, &b.Remarks,
		}, auditDest(&b.Audit)...)
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		return &b, nil
	},
	id:    func(b *entity.ConferenceHallBooking) int64 { return b.BookingID },
	setID: func(b *entity.ConferenceHallBooking, id int64) { b.BookingID = id },
}

var bookingSessionTable = table[entity.ConferenceHallBookingSession]{
	name:    "conference_hall_booking_sessions",
	key:     "id",
	columns: withAudit("booking_id", "session_id", "status"),
	values: func(bs *entity.ConferenceHallBookingSession) []any {
		return append([]any{bs.BookingID, bs.SessionID, bs.Status}, auditValues(&bs.Audit)...)
	},
	scan: func(row scanner) (*entity.ConferenceHallBookingSession, error) {
		var bs entity.ConferenceHallBookingSession
		dest := append([]any{&bs.ID, &bs.BookingID, &bs.SessionID, &bs.Status}, auditDest(&bs.Audit)...)
		if err := row.Scan(dest...); err != nil {
			return nil, err
		}
		return &bs, nil
	},
	id:    func(bs *entity.ConferenceHallBookingSession) int64 { return bs.ID },
	setID: func(bs *entity.ConferenceHallBookingSession, id int64) { bs.ID = id },
}
