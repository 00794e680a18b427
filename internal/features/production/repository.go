package production

import (
	"context"
	"database/sql"
	"errors"
	"time"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/database"
	"stitchmes/internal/reportquery"
)

// reportDef is the allow-list configuration for the daily production report.
// All SQL fragments are fixed here; user input only ever supplies values.
var reportDef = &reportquery.Definition{
	Name: "production",
	From: "production_entries",
	SelectList: `id, entry_ts, shift_date, employee_number, employee_name, machine_number,
		sales_order, design_number, pieces, stitch_count, is_sample, notes,
		COALESCE(SUM(pieces) OVER (PARTITION BY shift_date), 0) AS day_pieces,
		COALESCE(SUM(pieces) OVER (PARTITION BY shift_date, employee_number), 0) AS person_day_pieces`,
	TotalsList: `COALESCE(SUM(pieces), 0) AS pieces,
		COALESCE(SUM(stitch_count), 0) AS stitch_count,
		COALESCE(SUM(CASE WHEN is_sample THEN pieces ELSE 0 END), 0) AS sample_pieces`,
	DateColumn: "shift_date",
	Filters: []reportquery.FilterField{
		{Param: "employee_name", Column: "employee_name", Mode: reportquery.Contains},
		{Param: "design_number", Column: "design_number", Mode: reportquery.Contains},
		{Param: "machine_number", Column: "machine_number", Mode: reportquery.TextCast},
		{Param: "sales_order", Column: "sales_order", Mode: reportquery.TextCast},
		{Param: "employee_number", Column: "employee_number", Mode: reportquery.TextCast},
		{Param: "is_sample", Column: "is_sample", Mode: reportquery.Boolean},
	},
	SearchColumns: []string{
		"employee_name",
		"design_number",
		"notes",
		"CAST(sales_order AS TEXT)",
		"CAST(machine_number AS TEXT)",
		"CAST(employee_number AS TEXT)",
	},
	SortKeys: map[string]string{
		"entry_ts":          "entry_ts",
		"shift_date":        "shift_date",
		"employee_name":     "employee_name",
		"machine_number":    "machine_number",
		"sales_order":       "sales_order",
		"pieces":            "pieces",
		"stitch_count":      "stitch_count",
		"day_pieces":        "day_pieces",
		"person_day_pieces": "person_day_pieces",
	},
	DefaultSort:     "entry_ts",
	DefaultPageSize: 50,
	MinPageSize:     10,
	MaxPageSize:     500,
	CSVColumns: []string{
		"id", "entry_ts", "shift_date", "employee_number", "employee_name",
		"machine_number", "sales_order", "design_number", "pieces",
		"stitch_count", "is_sample", "notes", "day_pieces", "person_day_pieces",
	},
}

// Definition exposes the report config to the controller layer
func Definition() *reportquery.Definition { return reportDef }

type ProductionRepository interface {
	ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
	Insert(ctx context.Context, entry *Entry) (int64, error)
	GetByID(ctx context.Context, id int64) (*Entry, error)
}

type ProductionRepositoryImpl struct {
	db *sql.DB
}

func NewProductionRepository(pg *database.PostgresDB) ProductionRepository {
	return &ProductionRepositoryImpl{db: pg.DB}
}

func (r *ProductionRepositoryImpl) ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return reportquery.Run(ctx, r.db, reportDef, q, time.Now())
}

func (r *ProductionRepositoryImpl) ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return reportquery.Export(ctx, r.db, reportDef, q, time.Now())
}

func (r *ProductionRepositoryImpl) Insert(ctx context.Context, entry *Entry) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO production_entries
			(entry_ts, shift_date, employee_number, employee_name, machine_number,
			 sales_order, design_number, pieces, stitch_count, is_sample, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		entry.EntryTs, entry.ShiftDate, entry.EmployeeNumber, entry.EmployeeName,
		entry.MachineNumber, entry.SalesOrder, entry.DesignNumber, entry.Pieces,
		entry.StitchCount, entry.IsSample, entry.Notes,
	).Scan(&id)
	return id, err
}

func (r *ProductionRepositoryImpl) GetByID(ctx context.Context, id int64) (*Entry, error) {
	var e Entry
	err := r.db.QueryRowContext(ctx,
		`SELECT id, entry_ts, shift_date, employee_number, employee_name, machine_number,
			sales_order, design_number, pieces, stitch_count, is_sample, notes
		 FROM production_entries WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.EntryTs, &e.ShiftDate, &e.EmployeeNumber, &e.EmployeeName,
		&e.MachineNumber, &e.SalesOrder, &e.DesignNumber, &e.Pieces,
		&e.StitchCount, &e.IsSample, &e.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common_models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
