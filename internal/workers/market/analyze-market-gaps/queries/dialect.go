package queries

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"location-strategy-workers/internal/warehouse"
)

// Dialect renders the fragments of an aggregate query that differ between engines.
type Dialect interface {
	Name() string
	Select() string
	Table(id string) string
	Param(name string, index int) string
	CountIf(cond string) string
	Ratio(num, den string) string
	Round(expr string, places int) string
}

// BigQuery targets GoogleSQL with the aggregation threshold privacy clause.
type BigQuery struct{}

func (BigQuery) Name() string { return warehouse.DialectBigQuery }

func (BigQuery) Select() string { return "SELECT WITH AGGREGATION_THRESHOLD" }

func (BigQuery) Table(id string) string { return "`" + id + "`" }

func (BigQuery) Param(name string, _ int) string { return "@" + name }

func (BigQuery) CountIf(cond string) string { return fmt.Sprintf("COUNTIF(%s)", cond) }

// Ratio relies on GoogleSQL "/" always producing FLOAT64.
func (BigQuery) Ratio(num, den string) string { return fmt.Sprintf("%s / %s", num, den) }

func (BigQuery) Round(expr string, places int) string {
	return fmt.Sprintf("ROUND(%s, %d)", expr, places)
}

// Postgres targets PostgreSQL through lib/pq.
type Postgres struct{}

func (Postgres) Name() string { return warehouse.DialectPostgres }

func (Postgres) Select() string { return "SELECT" }

func (Postgres) Table(id string) string {
	parts := strings.Split(id, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

func (Postgres) Param(_ string, index int) string { return fmt.Sprintf("$%d", index) }

func (Postgres) CountIf(cond string) string {
	return fmt.Sprintf("COUNT(*) FILTER (WHERE %s)", cond)
}

// Ratio casts the numerator so integer counts do not truncate.
func (Postgres) Ratio(num, den string) string {
	return fmt.Sprintf("(%s)::numeric / %s", num, den)
}

func (Postgres) Round(expr string, places int) string {
	return fmt.Sprintf("ROUND((%s)::numeric, %d)", expr, places)
}

// DialectFor returns the dialect a warehouse backend speaks.
func DialectFor(name string) (Dialect, error) {
	switch name {
	case warehouse.DialectBigQuery:
		return BigQuery{}, nil
	case warehouse.DialectPostgres:
		return Postgres{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}
}
