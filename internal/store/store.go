package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DBTX is implemented by both *sql.DB and *sql.Tx, so a Table can be used
// in or out of a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Record is the table mapping an entity hands to the gateway.
// Columns, Values and the tail of ScanTargets must line up.
type Record interface {
	TableName() string
	Label() string
	Columns() []string
	Values() []any
	ScanTargets() []any // id first, then Columns() order
	SetID(id int64)
}

// Patch holds the columns of a partial update. Columns absent from the
// patch are left untouched.
type Patch map[string]any

// Table is a CRUD gateway for one entity type.
type Table[T any, PT interface {
	*T
	Record
}] struct {
	db    DBTX
	table string
	label string
	cols  []string
}

// NewTable builds a gateway for T on top of db.
func NewTable[T any, PT interface {
	*T
	Record
}](db DBTX) *Table[T, PT] {
	var zero T
	rec := PT(&zero)
	return &Table[T, PT]{
		db:    db,
		table: rec.TableName(),
		label: rec.Label(),
		cols:  rec.Columns(),
	}
}

// Create inserts ent and populates its id.
func (t *Table[T, PT]) Create(ctx context.Context, ent PT) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.cols)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.table, strings.Join(t.cols, ", "), placeholders)

	result, err := t.db.ExecContext(ctx, query, ent.Values()...)
	if err != nil {
		return fmt.Errorf("insert %s: %w", t.table, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert %s: last insert id: %w", t.table, err)
	}
	ent.SetID(id)
	return nil
}

// GetByID fetches one row. A missing row yields a *NotFoundError.
func (t *Table[T, PT]) GetByID(ctx context.Context, id int64) (PT, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", t.selectList(), t.table)

	var v T
	ent := PT(&v)
	err := t.db.QueryRowContext(ctx, query, id).Scan(ent.ScanTargets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: t.label, ID: id}
		}
		return nil, fmt.Errorf("select %s %d: %w", t.table, id, err)
	}
	return ent, nil
}

// Update applies patch to the row and returns the row as stored afterwards.
func (t *Table[T, PT]) Update(ctx context.Context, id int64, patch Patch) (PT, error) {
	current, err := t.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return current, nil
	}

	keys := make([]string, 0, len(patch))
	for k := range patch {
		if !t.hasColumn(k) {
			return nil, fmt.Errorf("update %s: %w: %q", t.table, ErrUnknownColumn, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, len(keys))
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		sets[i] = k + " = ?"
		args = append(args, patch[k])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.table, strings.Join(sets, ", "))
	if _, err := t.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update %s %d: %w", t.table, id, err)
	}
	return t.GetByID(ctx, id)
}

// Delete removes the row. Dependents are not touched.
func (t *Table[T, PT]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.table)
	result, err := t.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", t.table, id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: rows affected: %w", t.table, id, err)
	}
	if n == 0 {
		return &NotFoundError{Entity: t.label, ID: id}
	}
	return nil
}

// List returns every row in id order.
func (t *Table[T, PT]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", t.selectList(), t.table)
	return t.query(ctx, query)
}

// ListWhere returns the rows whose column equals value, in id order.
func (t *Table[T, PT]) ListWhere(ctx context.Context, column string, value any) ([]T, error) {
	if !t.hasColumn(column) {
		return nil, fmt.Errorf("list %s: %w: %q", t.table, ErrUnknownColumn, column)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? ORDER BY id", t.selectList(), t.table, column)
	return t.query(ctx, query, value)
}

// DeleteWhere removes every row whose column equals value and reports how
// many went.
func (t *Table[T, PT]) DeleteWhere(ctx context.Context, column string, value any) (int64, error) {
	if !t.hasColumn(column) {
		return 0, fmt.Errorf("delete %s: %w: %q", t.table, ErrUnknownColumn, column)
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.table, column)
	result, err := t.db.ExecContext(ctx, query, value)
	if err != nil {
		return 0, fmt.Errorf("delete %s by %s: %w", t.table, column, err)
	}
	return result.RowsAffected()
}

func (t *Table[T, PT]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var v T
		if err := rows.Scan(PT(&v).ScanTargets()...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", t.table, err)
	}
	return out, nil
}

func (t *Table[T, PT]) selectList() string {
	return "id, " + strings.Join(t.cols, ", ")
}

func (t *Table[T, PT]) hasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}
