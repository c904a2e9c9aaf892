package repository

import (
	"conference-hall/internal/data/entity"
	"conference-hall/pkg/database"

	"go.uber.org/zap"
)

func lookupTable[T any, P entity.LookupRecord[T]](name string) table[T] {
	return table[T]{
		name:    name,
		key:     "id",
		columns: withAudit("name", "status"),
		values: func(e *T) []any {
			b := P(e).Base()
			return append([]any{b.Name, b.Status}, auditValues(&b.Audit)...)
		},
		scan: func(row scanner) (*T, error) {
			var e T
			b := P(&e).Base()
			dest := append([]any{&b.ID, &b.Name, &b.Status}, auditDest(&b.Audit)...)
			if err := row.Scan(dest...); err != nil {
				return nil, err
			}
			return &e, nil
		},
		id:    func(e *T) int64 { return P(e).Base().ID },
		setID: func(e *T, id int64) { P(e).Base().ID = id },
	}
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) Repository[entity.RoomType] {
	return newCrudRepository(db, log, lookupTable[entity.RoomType]("room_types"))
}

func NewBookingStatusRepository(db database.PgxIface, log *zap.Logger) Repository[entity.BookingStatus] {
	return newCrudRepository(db, log, lookupTable[entity.BookingStatus]("booking_statuses"))
}
