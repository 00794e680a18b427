package laser

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
	Name: "laser",
	From: "laser_entries",
	SelectList: `id, entry_ts, shift_date, employee_number, operator_name, sales_order,
		detail_number, material, qty_cut, is_3d, notes,
		COALESCE(SUM(qty_cut) OVER (PARTITION BY shift_date), 0) AS day_qty,
		COALESCE(SUM(CASE WHEN is_3d THEN 0 ELSE qty_cut END) OVER (PARTITION BY shift_date), 0) AS day_flat_qty,
		COALESCE(SUM(CASE WHEN is_3d THEN qty_cut ELSE 0 END) OVER (PARTITION BY shift_date), 0) AS day_three_d_qty,
		COALESCE(SUM(qty_cut) OVER (PARTITION BY shift_date, employee_number), 0) AS person_day_qty`,
	TotalsList: `COALESCE(SUM(qty_cut), 0) AS qty_cut,
		COALESCE(SUM(CASE WHEN is_3d THEN 0 ELSE qty_cut END), 0) AS flat_qty,
		COALESCE(SUM(CASE WHEN is_3d THEN qty_cut ELSE 0 END), 0) AS three_d_qty`,
	DateColumn: "shift_date",
	Filters: []reportquery.FilterField{
		{Param: "operator_name", Column: "operator_name", Mode: reportquery.Contains},
		{Param: "material", Column: "material", Mode: reportquery.Contains},
		{Param: "sales_order", Column: "sales_order", Mode: reportquery.TextCast},
		{Param: "detail_number", Column: "detail_number", Mode: reportquery.TextCast},
		{Param: "employee_number", Column: "employee_number", Mode: reportquery.TextCast},
		{Param: "is_3d", Column: "is_3d", Mode: reportquery.Boolean},
	},
	SearchColumns: []string{
		"operator_name",
		"material",
		"notes",
		"CAST(sales_order AS TEXT)",
		"CAST(detail_number AS TEXT)",
		"CAST(employee_number AS TEXT)",
	},
	SortKeys: map[string]string{
		"entry_ts":       "entry_ts",
		"shift_date":     "shift_date",
		"operator_name":  "operator_name",
		"sales_order":    "sales_order",
		"material":       "material",
		"qty_cut":        "qty_cut",
		"day_qty":        "day_qty",
		"person_day_qty": "person_day_qty",
	},
	DefaultSort:     "entry_ts",
	DefaultPageSize: 50,
	MinPageSize:     10,
	MaxPageSize:     500,
	CSVColumns: []string{
		"id", "entry_ts", "shift_date", "employee_number", "operator_name",
		"sales_order", "detail_number", "material", "qty_cut", "is_3d", "notes",
		"day_qty", "day_flat_qty", "day_three_d_qty", "person_day_qty",
	},
}

// Definition exposes the report config to the controller layer
func Definition() *reportquery.Definition { return reportDef }

type LaserRepository interface {
	ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
	Insert(ctx context.Context, entry *Entry) (int64, error)
	GetByID(ctx context.Context, id int64) (*Entry, error)
}

type LaserRepositoryImpl struct {
	db *sql.DB
}

func NewLaserRepository(pg *database.PostgresDB) LaserRepository {
	return &LaserRepositoryImpl{db: pg.DB}
}

func (r *LaserRepositoryImpl) ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return reportquery.Run(ctx, r.db, reportDef, q, time.Now())
}

func (r *LaserRepositoryImpl) ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return reportquery.Export(ctx, r.db, reportDef, q, time.Now())
}

func (r *LaserRepositoryImpl) Insert(ctx context.Context, entry *Entry) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO laser_entries
			(entry_ts, shift_date, employee_number, operator_name, sales_order,
			 detail_number, material, qty_cut, is_3d, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		entry.EntryTs, entry.ShiftDate, entry.EmployeeNumber, entry.OperatorName,
		entry.SalesOrder, entry.DetailNumber, entry.Material, entry.QtyCut,
		entry.IsThreeD, entry.Notes,
	).Scan(&id)
	return id, err
}

func (r *LaserRepositoryImpl) GetByID(ctx context.Context, id int64) (*Entry, error) {
	var e Entry
	err := r.db.QueryRowContext(ctx,
		`SELECT id, entry_ts, shift_date, employee_number, operator_name, sales_order,
			detail_number, material, qty_cut, is_3d, notes
		 FROM laser_entries WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.EntryTs, &e.ShiftDate, &e.EmployeeNumber, &e.OperatorName,
		&e.SalesOrder, &e.DetailNumber, &e.Material, &e.QtyCut, &e.IsThreeD, &e.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common_models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
