package reportquery

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the JSON envelope for a paged report response
type Result struct {
	Page       int                      `json:"page"`
	PageSize   int                      `json:"pageSize"`
	TotalCount int                      `json:"totalCount"`
	TotalPages int                      `json:"totalPages"`
	Rows       []map[string]interface{} `json:"rows"`
	Totals     map[string]interface{}   `json:"totals"`
}

// Run executes a paged report: the count query, the paged row query, and the
// grand-totals query share one predicate and run concurrently. None mutates
// data and none depends on another's result, so fire-and-await-all is safe.
func Run(ctx context.Context, db *sql.DB, def *Definition, q Query, now time.Time) (*Result, error) {
	pred := BuildPredicate(def, q, now)
	order := ResolveSort(def, q.SortKey, q.SortDir)

	res := &Result{
		Page:     q.Page,
		PageSize: q.PageSize,
		Rows:     []map[string]interface{}{},
		Totals:   map[string]interface{}{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", def.From, pred.SQL)
		return db.QueryRowContext(gctx, countSQL, pred.Args...).Scan(&res.TotalCount)
	})

	g.Go(func() error {
		// LIMIT/OFFSET are server-clamped ints, safe to inline
		rowsSQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT %d OFFSET %d",
			def.SelectList, def.From, pred.SQL, order, q.PageSize, q.Offset())
		rows, err := db.QueryContext(gctx, rowsSQL, pred.Args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		data, err := RowsToMaps(rows)
		if err != nil {
			return err
		}
		res.Rows = data
		return nil
	})

	g.Go(func() error {
		totalsSQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s", def.TotalsList, def.From, pred.SQL)
		rows, err := db.QueryContext(gctx, totalsSQL, pred.Args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		data, err := RowsToMaps(rows)
		if err != nil {
			return err
		}
		if len(data) > 0 {
			res.Totals = data[0]
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.TotalPages = TotalPages(res.TotalCount, res.PageSize)
	return res, nil
}

// Export executes the unpaged filtered+sorted query for csv/xlsx downloads
func Export(ctx context.Context, db *sql.DB, def *Definition, q Query, now time.Time) ([]map[string]interface{}, error) {
	pred := BuildPredicate(def, q, now)
	order := ResolveSort(def, q.SortKey, q.SortDir)

	exportSQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s",
		def.SelectList, def.From, pred.SQL, order)

	rows, err := db.QueryContext(ctx, exportSQL, pred.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return RowsToMaps(rows)
}

// RowsToMaps converts SQL rows to a slice of maps
func RowsToMaps(rows *sql.Rows) ([]map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := []map[string]interface{}{}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{})
		for i, col := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = val
			}
		}

		result = append(result, row)
	}

	return result, rows.Err()
}
