// Package bq_competitors looks competitors up in a BigQuery company directory
// instead of asking the language model.
package bq_competitors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/DhruvPatel284/supermind-ART/pkgs/models"
	"google.golang.org/api/iterator"
)

const DefaultLimit = 5

// rowIterator is the part of *bigquery.RowIterator the directory reads.
type rowIterator interface {
	Next(dst interface{}) error
}

type queryFunc func(ctx context.Context, sql string, params []bigquery.QueryParameter) (rowIterator, error)

type companyRow struct {
	Name string `bigquery:"name"`
}

// Directory finds companies that share a domain with the requester.
// The table needs STRING columns name and domain.
type Directory struct {
	query  queryFunc
	table  string
	limit  int
	logger *slog.Logger
}

func NewDirectory(client *bigquery.Client, project, dataset, table string, logger *slog.Logger) *Directory {
	run := func(ctx context.Context, sql string, params []bigquery.QueryParameter) (rowIterator, error) {
		q := client.Query(sql)
		q.Parameters = params
		return q.Read(ctx)
	}
	return newDirectory(run, fmt.Sprintf("%s.%s.%s", project, dataset, table), logger)
}

func newDirectory(run queryFunc, table string, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{query: run, table: table, limit: DefaultLimit, logger: logger}
}

func buildQuery(table string) string {
	return fmt.Sprintf(
		"SELECT name FROM `%s` WHERE LOWER(domain) = LOWER(@domain) AND LOWER(name) != LOWER(@name) "+
			"ORDER BY name LIMIT @limit",
		table,
	)
}

// FindCompetitors returns up to five companies in the same domain.
func (d *Directory) FindCompetitors(ctx context.Context, company models.CompanyInfo) ([]string, error) {
	params := []bigquery.QueryParameter{
		{Name: "domain", Value: strings.TrimSpace(company.Domain)},
		{Name: "name", Value: strings.TrimSpace(company.Name)},
		{Name: "limit", Value: d.limit},
	}
	it, err := d.query(ctx, buildQuery(d.table), params)
	if err != nil {
		return nil, fmt.Errorf("could not query table %s: %w", d.table, err)
	}

	competitors := []string{}
	for {
		var row companyRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read query result from table %s: %w", d.table, err)
		}
		if name := strings.TrimSpace(row.Name); name != "" {
			competitors = append(competitors, name)
		}
	}

	d.logger.Info("Looked up competitors in BigQuery", "domain", company.Domain, "count", len(competitors))
	return competitors, nil
}
