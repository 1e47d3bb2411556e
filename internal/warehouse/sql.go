package warehouse

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLWarehouse runs statements over database/sql. Params bind positionally.
type SQLWarehouse struct {
	db      *sql.DB
	dialect string
}

func NewSQL(db *sql.DB, dialect string) *SQLWarehouse {
	if dialect == "" {
		dialect = DialectPostgres
	}
	return &SQLWarehouse{db: db, dialect: dialect}
}

func (w *SQLWarehouse) Dialect() string {
	return w.dialect
}

func (w *SQLWarehouse) Query(ctx context.Context, stmt Statement) ([]Row, error) {
	rows, err := w.db.QueryContext(ctx, stmt.SQL, stmt.Args()...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	out := make([]Row, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// Ping verifies the database is reachable.
func (w *SQLWarehouse) Ping(ctx context.Context) error {
	return w.db.PingContext(ctx)
}
