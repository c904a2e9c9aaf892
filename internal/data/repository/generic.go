package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"conference-hall/internal/data/entity"
	"conference-hall/pkg/apperror"
	"conference-hall/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Repository is the data access contract shared by every entity type.
type Repository[T any] interface {
	// Add inserts e and sets its generated id.
	Add(ctx context.Context, e *T) error
	// Update writes the whole row. A missing row yields apperror.ErrNotFound.
	Update(ctx context.Context, e *T) error
	// GetByID returns nil, nil when the row does not exist.
	GetByID(ctx context.Context, id int64) (*T, error)
	// GetAll returns every row, active or not, ordered by id.
	GetAll(ctx context.Context) ([]*T, error)
}

type scanner interface {
	Scan(dest ...any) error
}

// table maps one entity type onto its table. columns excludes the key and
// values/scan follow the same order (scan reads the key first).
type table[T any] struct {
	name    string
	key     string
	columns []string
	values  func(e *T) []any
	scan    func(row scanner) (*T, error)
	id      func(e *T) int64
	setID   func(e *T, id int64)
}

// crudRepository implements Repository once for any table mapping.
type crudRepository[T any] struct {
	db  database.PgxIface
	log *zap.Logger
	t   table[T]

	selectSQL string
	insertSQL string
	updateSQL string
}

func newCrudRepository[T any](db database.PgxIface, log *zap.Logger, t table[T]) *crudRepository[T] {
	placeholders := make([]string, len(t.columns))
	assignments := make([]string, len(t.columns))
	for i, col := range t.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}

	return &crudRepository[T]{
		db:  db,
		log: log.With(zap.String("repository", t.name)),
		t:   t,
		selectSQL: fmt.Sprintf("SELECT %s, %s FROM %s",
			t.key, strings.Join(t.columns, ", "), t.name),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "), t.key),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1",
			t.name, strings.Join(assignments, ", "), t.key),
	}
}

func (r *crudRepository[T]) Add(ctx context.Context, e *T) error {
	if e == nil {
		return fmt.Errorf("insert %s: nil entity", r.t.name)
	}

	var id int64
	err := database.Conn(ctx, r.db).QueryRow(ctx, r.insertSQL, r.t.values(e)...).Scan(&id)
	if err != nil {
		r.log.Error("Failed to insert row", zap.Error(err))
		return fmt.Errorf("insert %s: %w", r.t.name, err)
	}

	r.t.setID(e, id)
	return nil
}

func (r *crudRepository[T]) Update(ctx context.Context, e *T) error {
	if e == nil {
		return fmt.Errorf("update %s: nil entity", r.t.name)
	}

	id := r.t.id(e)
	args := append([]any{id}, r.t.values(e)...)

	result, err := database.Conn(ctx, r.db).Exec(ctx, r.updateSQL, args...)
	if err != nil {
		r.log.Error("Failed to update row", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("update %s %d: %w", r.t.name, id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update %s %d: %w", r.t.name, id, apperror.ErrNotFound)
	}

	return nil
}

func (r *crudRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := r.selectSQL + fmt.Sprintf(" WHERE %s = $1", r.t.key)

	e, err := r.t.scan(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find row by ID", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("find %s %d: %w", r.t.name, id, err)
	}

	return e, nil
}

func (r *crudRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.list(ctx, "", "")
}

// list selects rows matching where (may be empty) in the given order
// (defaults to the key).
func (r *crudRepository[T]) list(ctx context.Context, where, orderBy string, args ...any) ([]*T, error) {
	query := r.selectSQL
	if where != "" {
		query += " WHERE " + where
	}
	if orderBy == "" {
		orderBy = r.t.key
	}
	query += " ORDER BY " + orderBy

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list rows", zap.Error(err), zap.String("where", where))
		return nil, fmt.Errorf("list %s: %w", r.t.name, err)
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		e, err := r.t.scan(rows)
		if err != nil {
			r.log.Error("Failed to scan row", zap.Error(err))
			return nil, fmt.Errorf("scan %s row: %w", r.t.name, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", r.t.name, err)
	}

	return out, nil
}

var auditColumns = []string{
	"created_by", "created_on", "created_from",
	"updated_by", "updated_on", "updated_from",
}

func auditValues(a *entity.Audit) []any {
	return []any{a.CreatedBy, a.CreatedOn, a.CreatedFrom, a.UpdatedBy, a.UpdatedOn, a.UpdatedFrom}
}

func auditDest(a *entity.Audit) []any {
	return []any{&a.CreatedBy, &a.CreatedOn, &a.CreatedFrom, &a.UpdatedBy, &a.UpdatedOn, &a.UpdatedFrom}
}

func withAudit(cols ...string) []string {
	return append(cols, auditColumns...)
}
