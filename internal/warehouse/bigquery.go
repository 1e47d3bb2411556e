package warehouse

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQueryWarehouse runs statements as BigQuery jobs with named parameters.
type BigQueryWarehouse struct {
	client   *bigquery.Client
	location string
}

func NewBigQuery(client *bigquery.Client, location string) *BigQueryWarehouse {
	return &BigQueryWarehouse{client: client, location: location}
}

func (w *BigQueryWarehouse) Dialect() string {
	return DialectBigQuery
}

func (w *BigQueryWarehouse) Query(ctx context.Context, stmt Statement) ([]Row, error) {
	q := w.client.Query(stmt.SQL)
	if w.location != "" {
		q.Location = w.location
	}
	for _, p := range stmt.Params {
		q.Parameters = append(q.Parameters, bigquery.QueryParameter{Name: p.Name, Value: p.Value})
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("bigquery read: %w", err)
	}

	rows := make([]Row, 0)
	for {
		var values map[string]bigquery.Value
		err := it.Next(&values)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bigquery iterate: %w", err)
		}

		row := make(Row, len(values))
		for k, v := range values {
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (w *BigQueryWarehouse) Close() error {
	return w.client.Close()
}
