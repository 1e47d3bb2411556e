package database

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"location-strategy-workers/internal/common/config"
)

// NewBigQuery creates a client using application default credentials. When no project is
// configured it falls back to the project part of a fully qualified table id.
func NewBigQuery(ctx context.Context, cfg config.WarehouseConfig, opts ...option.ClientOption) (*bigquery.Client, error) {
	project := cfg.ProjectID
	if project == "" {
		project = projectFromTableID(cfg.TableID)
	}
	if project == "" {
		project = bigquery.DetectProjectID
	}

	client, err := bigquery.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}
	if cfg.Location != "" {
		client.Location = cfg.Location
	}
	return client, nil
}

func projectFromTableID(tableID string) string {
	parts := strings.Split(tableID, ".")
	if len(parts) == 3 {
		return parts[0]
	}
	return ""
}
