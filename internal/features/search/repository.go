package search

import (
	"context"
	"database/sql"
	"time"

	"stitchmes/internal/database"
	"stitchmes/internal/reportquery"
)

// The global search runs over a UNION ALL of the four modules projected onto
// one common shape. Numeric identifiers are searched as text so a partial
// sales order typed into the search box matches anywhere in the number.
var reportDef = &reportquery.Definition{
	Name: "search",
	From: `(
		SELECT 'production' AS module, id, entry_ts, shift_date, employee_number,
			employee_name AS person_name, sales_order, design_number AS detail,
			pieces AS quantity, notes
		FROM production_entries
		UNION ALL
		SELECT 'qc', id, entry_ts, shift_date, employee_number,
			inspector_name, sales_order, CAST(detail_number AS TEXT),
			qty_inspected, notes
		FROM qc_entries
		UNION ALL
		SELECT 'emblem', i.id, s.entry_ts, s.shift_date, s.employee_number,
			s.operator_name, s.sales_order, i.emblem_type,
			i.qty, s.notes
		FROM emblem_items i JOIN emblem_submissions s ON i.submission_id = s.id
		UNION ALL
		SELECT 'laser', id, entry_ts, shift_date, employee_number,
			operator_name, sales_order, material,
			qty_cut, notes
		FROM laser_entries
	) u`,
	SelectList: `module, id, entry_ts, shift_date, employee_number, person_name,
		sales_order, detail, quantity, notes`,
	TotalsList: `COALESCE(SUM(quantity), 0) AS quantity`,
	DateColumn: "shift_date",
	Filters: []reportquery.FilterField{
		{Param: "module", Column: "module", Mode: reportquery.Contains},
		{Param: "person_name", Column: "person_name", Mode: reportquery.Contains},
		{Param: "sales_order", Column: "sales_order", Mode: reportquery.TextCast},
		{Param: "employee_number", Column: "employee_number", Mode: reportquery.TextCast},
	},
	SearchColumns: []string{
		"person_name",
		"detail",
		"notes",
		"module",
		"CAST(sales_order AS TEXT)",
		"CAST(employee_number AS TEXT)",
	},
	SortKeys: map[string]string{
		"entry_ts":    "entry_ts",
		"shift_date":  "shift_date",
		"module":      "module",
		"person_name": "person_name",
		"sales_order": "sales_order",
		"quantity":    "quantity",
	},
	DefaultSort:     "entry_ts",
	DefaultPageSize: 25,
	MinPageSize:     5,
	MaxPageSize:     200,
	CSVColumns: []string{
		"module", "id", "entry_ts", "shift_date", "employee_number",
		"person_name", "sales_order", "detail", "quantity", "notes",
	},
}

// Definition exposes the report config to the controller layer
func Definition() *reportquery.Definition { return reportDef }

type SearchRepository interface {
	ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
}

type SearchRepositoryImpl struct {
	db *sql.DB
}

func NewSearchRepository(pg *database.PostgresDB) SearchRepository {
	return &SearchRepositoryImpl{db: pg.DB}
}

func (r *SearchRepositoryImpl) ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return reportquery.Run(ctx, r.db, reportDef, q, time.Now())
}

func (r *SearchRepositoryImpl) ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return reportquery.Export(ctx, r.db, reportDef, q, time.Now())
}
