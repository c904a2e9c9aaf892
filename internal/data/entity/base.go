package entity

import (
	"time"
)

// Audit is the created/updated triple every mutable table carries.
type Audit struct {
	CreatedBy   string    `db:"created_by"`
	CreatedOn   time.Time `db:"created_on"`
	CreatedFrom string    `db:"created_from"`
	UpdatedBy   string    `db:"updated_by"`
	UpdatedOn   time.Time `db:"updated_on"`
	UpdatedFrom string    `db:"updated_from"`
}

// Stamp fills both triples for a row about to be inserted.
func (a *Audit) Stamp(actor, from string, now time.Time) {
	a.CreatedBy = actor
	a.CreatedOn = now
	a.CreatedFrom = from
	a.Touch(actor, from, now)
}

// Touch refreshes the updated triple. Every write goes through it.
func (a *Audit) Touch(actor, from string, now time.Time) {
	a.UpdatedBy = actor
	a.UpdatedOn = now
	a.UpdatedFrom = from
}
