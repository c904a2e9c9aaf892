package entity

// Seeded booking status ids, see migrations/0001_init.sql.
const (
	BookingStatusPending   int64 = 1
	BookingStatusApproved  int64 = 2
	BookingStatusCancelled int64 = 3
	BookingStatusRejected  int64 = 4
)

// Lookup is the shape shared by the master data tables.
type Lookup struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Status bool   `db:"status"`
	Audit
}

// Base gives generic code access to the shared fields.
func (l *Lookup) Base() *Lookup {
	return l
}

type RoomType struct {
	Lookup
}

type BookingStatus struct {
	Lookup
}

// LookupRecord lets generic code treat *RoomType and *BookingStatus alike.
type LookupRecord[T any] interface {
	*T
	Base() *Lookup
}
