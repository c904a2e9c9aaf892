package usecase

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"conference-hall/internal/data/entity"
	"conference-hall/internal/data/repository"
	"conference-hall/pkg/apperror"
)

// memTable is an in-memory Repository[T]. Rows are stored by value so
// callers never share state with the store.
type memTable[T any] struct {
	rows  map[int64]T
	next  int64
	id    func(*T) int64
	setID func(*T, int64)
	calls *int

	// failAdd, when set, is consulted before every insert.
	failAdd func(e *T) error
}

func newMemTable[T any](calls *int, id func(*T) int64, setID func(*T, int64)) *memTable[T] {
	return &memTable[T]{rows: map[int64]T{}, id: id, setID: setID, calls: calls}
}

func (m *memTable[T]) Add(_ context.Context, e *T) error {
	*m.calls++
	if m.failAdd != nil {
		if err := m.failAdd(e); err != nil {
			return err
		}
	}
	m.next++
	m.setID(e, m.next)
	m.rows[m.next] = *e
	return nil
}

func (m *memTable[T]) Update(_ context.Context, e *T) error {
	*m.calls++
	id := m.id(e)
	if _, ok := m.rows[id]; !ok {
		return apperror.ErrNotFound
	}
	m.rows[id] = *e
	return nil
}

func (m *memTable[T]) GetByID(_ context.Context, id int64) (*T, error) {
	*m.calls++
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memTable[T]) GetAll(_ context.Context) ([]*T, error) {
	*m.calls++
	return m.sorted(func(*T) bool { return true }), nil
}

func (m *memTable[T]) sorted(keep func(*T) bool) []*T {
	ids := slices.Sorted(maps.Keys(m.rows))
	var out []*T
	for _, id := range ids {
		row := m.rows[id]
		if keep(&row) {
			out = append(out, &row)
		}
	}
	return out
}

func (m *memTable[T]) snapshot() func() {
	rows, next := maps.Clone(m.rows), m.next
	return func() {
		m.rows, m.next = rows, next
	}
}

type fakeHalls struct {
	*memTable[entity.ConferenceHall]
	uow *fakeUoW
}

func (r *fakeHalls) CreateWithSessions(ctx context.Context, hall *entity.ConferenceHall) error {
	return r.uow.Do(ctx, func(ctx context.Context) error {
		if err := r.Add(ctx, hall); err != nil {
			return err
		}
		for _, s := range hall.Sessions {
			s.HallID = hall.HallID
			if err := r.uow.sessions.Add(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
}

type fakeSessions struct {
	*memTable[entity.ConferenceHallSession]
}

func (r *fakeSessions) ListByHall(_ context.Context, hallID int64) ([]*entity.ConferenceHallSession, error) {
	*r.calls++
	out := r.sorted(func(s *entity.ConferenceHallSession) bool { return s.HallID == hallID })
	slices.SortStableFunc(out, func(a, b *entity.ConferenceHallSession) int {
		return int(a.StartTime - b.StartTime)
	})
	return out, nil
}

type fakeBookings struct {
	*memTable[entity.ConferenceHallBooking]
	uow *fakeUoW
}

func (r *fakeBookings) GetByID(ctx context.Context, id int64) (*entity.ConferenceHallBooking, error) {
	b, err := r.memTable.GetByID(ctx, id)
	if b != nil {
		r.include(b)
	}
	return b, err
}

func (r *fakeBookings) GetAll(ctx context.Context) ([]*entity.ConferenceHallBooking, error) {
	all, err := r.memTable.GetAll(ctx)
	for _, b := range all {
		r.include(b)
	}
	return all, err
}

func (r *fakeBookings) include(b *entity.ConferenceHallBooking) {
	u := r.uow
	if h, ok := u.halls.rows[b.HallID]; ok {
		b.Hall = &h
	}
	if rt, ok := u.roomTypes.rows[b.RoomTypeID]; ok {
		b.RoomType = &rt
	}
	if st, ok := u.statuses.rows[b.Status]; ok {
		b.StatusInfo = &st
	}
	b.Sessions = u.bookingSessions.sorted(func(bs *entity.ConferenceHallBookingSession) bool {
		return bs.BookingID == b.BookingID
	})
	for _, bs := range b.Sessions {
		if s, ok := u.sessions.rows[bs.SessionID]; ok {
			bs.Session = &s
		}
		if st, ok := u.statuses.rows[bs.Status]; ok {
			bs.StatusInfo = &st
		}
	}
}

type fakeBookingSessions struct {
	*memTable[entity.ConferenceHallBookingSession]
}

func (r *fakeBookingSessions) ListByBooking(_ context.Context, bookingID int64) ([]*entity.ConferenceHallBookingSession, error) {
	*r.calls++
	return r.sorted(func(bs *entity.ConferenceHallBookingSession) bool { return bs.BookingID == bookingID }), nil
}

type fakeRoles struct {
	*memTable[entity.TempEmployeeRole]
}

func (r *fakeRoles) Search(_ context.Context, term string) ([]*entity.TempEmployeeRole, error) {
	*r.calls++
	term = strings.ToLower(strings.TrimSpace(term))
	out := r.sorted(func(t *entity.TempEmployeeRole) bool {
		return t.Status && strings.Contains(strings.ToLower(t.EmpNo), term)
	})
	slices.Reverse(out)
	return out, nil
}

type txMarker struct{}

// fakeUoW commits by keeping changes and rolls back by restoring a snapshot
// taken when the outermost Do started.
type fakeUoW struct {
	calls int
	saves int

	halls           *fakeHalls
	sessions        *fakeSessions
	bookings        *fakeBookings
	bookingSessions *fakeBookingSessions
	roles           *fakeRoles
	roomTypes       *memTable[entity.RoomType]
	statuses        *memTable[entity.BookingStatus]
}

var _ repository.UnitOfWork = (*fakeUoW)(nil)

func newFakeUoW() *fakeUoW {
	u := &fakeUoW{}
	u.halls = &fakeHalls{uow: u, memTable: newMemTable(&u.calls,
		func(e *entity.ConferenceHall) int64 { return e.HallID },
		func(e *entity.ConferenceHall, id int64) { e.HallID = id })}
	u.sessions = &fakeSessions{newMemTable(&u.calls,
		func(e *entity.ConferenceHallSession) int64 { return e.SessionID },
		func(e *entity.ConferenceHallSession, id int64) { e.SessionID = id })}
	u.bookings = &fakeBookings{uow: u, memTable: newMemTable(&u.calls,
		func(e *entity.ConferenceHallBooking) int64 { return e.BookingID },
		func(e *entity.ConferenceHallBooking, id int64) { e.BookingID = id })}
	u.bookingSessions = &fakeBookingSessions{newMemTable(&u.calls,
		func(e *entity.ConferenceHallBookingSession) int64 { return e.ID },
		func(e *entity.ConferenceHallBookingSession, id int64) { e.ID = id })}
	u.roles = &fakeRoles{newMemTable(&u.calls,
		func(e *entity.TempEmployeeRole) int64 { return e.ID },
		func(e *entity.TempEmployeeRole, id int64) { e.ID = id })}
	u.roomTypes = newMemTable(&u.calls,
		func(e *entity.RoomType) int64 { return e.ID },
		func(e *entity.RoomType, id int64) { e.ID = id })
	u.statuses = newMemTable(&u.calls,
		func(e *entity.BookingStatus) int64 { return e.ID },
		func(e *entity.BookingStatus, id int64) { e.ID = id })
	return u
}

func (u *fakeUoW) ConferenceHalls() repository.ConferenceHallRepository     { return u.halls }
func (u *fakeUoW) HallSessions() repository.SessionRepository               { return u.sessions }
func (u *fakeUoW) Bookings() repository.BookingRepository                   { return u.bookings }
func (u *fakeUoW) BookingSessions() repository.BookingSessionRepository     { return u.bookingSessions }
func (u *fakeUoW) TempEmployeeRoles() repository.TempEmployeeRoleRepository { return u.roles }
func (u *fakeUoW) RoomTypes() repository.Repository[entity.RoomType]        { return u.roomTypes }
func (u *fakeUoW) BookingStatuses() repository.Repository[entity.BookingStatus] {
	return u.statuses
}

func (u *fakeUoW) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}

	restores := []func(){
		u.halls.snapshot(), u.sessions.snapshot(), u.bookings.snapshot(),
		u.bookingSessions.snapshot(), u.roles.snapshot(), u.roomTypes.snapshot(), u.statuses.snapshot(),
	}
	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	u.saves++
	return nil
}

// seedLookups inserts the booking statuses and one room type.
func (u *fakeUoW) seedLookups() {
	ctx := context.Background()
	for _, name := range []string{"Pending", "Approved", "Cancelled", "Rejected"} {
		_ = u.statuses.Add(ctx, &entity.BookingStatus{Lookup: entity.Lookup{Name: name, Status: true}})
	}
	_ = u.roomTypes.Add(ctx, &entity.RoomType{Lookup: entity.Lookup{Name: "Board Room", Status: true}})
	u.calls = 0
}

// fixedClock returns a clock that advances by step on every call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	now := start.Add(-step)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
