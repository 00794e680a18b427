package qc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/database"
	"stitchmes/internal/reportquery"
)

var reportDef = &reportquery.Definition{
	Name: "qc",
	From: "qc_entries",
	SelectList: `id, entry_ts, shift_date, employee_number, inspector_name, sales_order,
		detail_number, qty_inspected, qty_passed, qty_rejected, defect_type, notes,
		COALESCE(SUM(qty_inspected) OVER (PARTITION BY shift_date), 0) AS day_inspected,
		COALESCE(SUM(qty_rejected) OVER (PARTITION BY shift_date), 0) AS day_rejected,
		COALESCE(SUM(qty_inspected) OVER (PARTITION BY shift_date, employee_number), 0) AS person_day_inspected`,
	TotalsList: `COALESCE(SUM(qty_inspected), 0) AS qty_inspected,
		COALESCE(SUM(qty_passed), 0) AS qty_passed,
		COALESCE(SUM(qty_rejected), 0) AS qty_rejected`,
	DateColumn: "shift_date",
	Filters: []reportquery.FilterField{
		{Param: "inspector_name", Column: "inspector_name", Mode: reportquery.Contains},
		{Param: "defect_type", Column: "defect_type", Mode: reportquery.Contains},
		{Param: "sales_order", Column: "sales_order", Mode: reportquery.TextCast},
		{Param: "detail_number", Column: "detail_number", Mode: reportquery.TextCast},
		{Param: "employee_number", Column: "employee_number", Mode: reportquery.TextCast},
	},
	SearchColumns: []string{
		"inspector_name",
		"defect_type",
		"notes",
		"CAST(sales_order AS TEXT)",
		"CAST(detail_number AS TEXT)",
		"CAST(employee_number AS TEXT)",
	},
	SortKeys: map[string]string{
		"entry_ts":             "entry_ts",
		"shift_date":           "shift_date",
		"inspector_name":       "inspector_name",
		"sales_order":          "sales_order",
		"qty_inspected":        "qty_inspected",
		"qty_rejected":         "qty_rejected",
		"day_inspected":        "day_inspected",
		"day_rejected":         "day_rejected",
		"person_day_inspected": "person_day_inspected",
	},
	DefaultSort:     "entry_ts",
	DefaultPageSize: 50,
	MinPageSize:     10,
	MaxPageSize:     500,
	CSVColumns: []string{
		"id", "entry_ts", "shift_date", "employee_number", "inspector_name",
		"sales_order", "detail_number", "qty_inspected", "qty_passed",
		"qty_rejected", "defect_type", "notes", "day_inspected", "day_rejected",
		"person_day_inspected",
	},
}

// Definition exposes the report config to the controller layer
func Definition() *reportquery.Definition { return reportDef }

type QCRepository interface {
	ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
	Insert(ctx context.Context, entry *Entry) (int64, error)
	GetByID(ctx context.Context, id int64) (*Entry, error)
}

type QCRepositoryImpl struct {
	db *sql.DB
}

func NewQCRepository(pg *database.PostgresDB) QCRepository {
	return &QCRepositoryImpl{db: pg.DB}
}

func (r *QCRepositoryImpl) ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return reportquery.Run(ctx, r.db, reportDef, q, time.Now())
}

func (r *QCRepositoryImpl) ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return reportquery.Export(ctx, r.db, reportDef, q, time.Now())
}

func (r *QCRepositoryImpl) Insert(ctx context.Context, entry *Entry) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO qc_entries
			(entry_ts, shift_date, employee_number, inspector_name, sales_order,
			 detail_number, qty_inspected, qty_passed, qty_rejected, defect_type, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		entry.EntryTs, entry.ShiftDate, entry.EmployeeNumber, entry.InspectorName,
		entry.SalesOrder, entry.DetailNumber, entry.QtyInspected, entry.QtyPassed,
		entry.QtyRejected, entry.DefectType, entry.Notes,
	).Scan(&id)
	return id, err
}

func (r *QCRepositoryImpl) GetByID(ctx context.Context, id int64) (*Entry, error) {
	var e Entry
	err := r.db.QueryRowContext(ctx,
		`SELECT id, entry_ts, shift_date, employee_number, inspector_name, sales_order,
			detail_number, qty_inspected, qty_passed, qty_rejected, defect_type, notes
		 FROM qc_entries WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.EntryTs, &e.ShiftDate, &e.EmployeeNumber, &e.InspectorName,
		&e.SalesOrder, &e.DetailNumber, &e.QtyInspected, &e.QtyPassed,
		&e.QtyRejected, &e.DefectType, &e.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common_models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
