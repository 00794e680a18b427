package emblem

import (
	"context"
	"database/sql"
	"errors"
	"time"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/database"
	"stitchmes/internal/reportquery"
)

// The report is item-grained: each row is one emblem line joined to its
// submission header, with partition totals over the submission's shift date.
var reportDef = &reportquery.Definition{
	Name: "emblem",
	From: "emblem_items i JOIN emblem_submissions s ON i.submission_id = s.id",
	SelectList: `i.id, i.submission_id, s.entry_ts, s.shift_date, s.employee_number,
		s.operator_name, s.sales_order, i.emblem_type, i.qty, s.notes,
		COALESCE(SUM(i.qty) OVER (PARTITION BY s.shift_date), 0) AS day_qty,
		COALESCE(SUM(CASE WHEN i.emblem_type = 'sew' THEN i.qty ELSE 0 END) OVER (PARTITION BY s.shift_date), 0) AS day_sew_qty,
		COALESCE(SUM(CASE WHEN i.emblem_type = 'sticker' THEN i.qty ELSE 0 END) OVER (PARTITION BY s.shift_date), 0) AS day_sticker_qty,
		COALESCE(SUM(CASE WHEN i.emblem_type = 'heat_seal' THEN i.qty ELSE 0 END) OVER (PARTITION BY s.shift_date), 0) AS day_heat_seal_qty,
		COALESCE(SUM(i.qty) OVER (PARTITION BY s.shift_date, s.employee_number), 0) AS person_day_qty`,
	TotalsList: `COALESCE(SUM(i.qty), 0) AS qty,
		COALESCE(SUM(CASE WHEN i.emblem_type = 'sew' THEN i.qty ELSE 0 END), 0) AS sew_qty,
		COALESCE(SUM(CASE WHEN i.emblem_type = 'sticker' THEN i.qty ELSE 0 END), 0) AS sticker_qty,
		COALESCE(SUM(CASE WHEN i.emblem_type = 'heat_seal' THEN i.qty ELSE 0 END), 0) AS heat_seal_qty`,
	DateColumn: "s.shift_date",
	Filters: []reportquery.FilterField{
		{Param: "operator_name", Column: "s.operator_name", Mode: reportquery.Contains},
		{Param: "emblem_type", Column: "i.emblem_type", Mode: reportquery.Contains},
		{Param: "sales_order", Column: "s.sales_order", Mode: reportquery.TextCast},
		{Param: "employee_number", Column: "s.employee_number", Mode: reportquery.TextCast},
	},
	SearchColumns: []string{
		"s.operator_name",
		"i.emblem_type",
		"s.notes",
		"CAST(s.sales_order AS TEXT)",
		"CAST(s.employee_number AS TEXT)",
	},
	SortKeys: map[string]string{
		"entry_ts":       "s.entry_ts",
		"shift_date":     "s.shift_date",
		"operator_name":  "s.operator_name",
		"sales_order":    "s.sales_order",
		"emblem_type":    "i.emblem_type",
		"qty":            "i.qty",
		"day_qty":        "day_qty",
		"person_day_qty": "person_day_qty",
	},
	DefaultSort:     "s.entry_ts",
	DefaultPageSize: 50,
	MinPageSize:     10,
	MaxPageSize:     500,
	CSVColumns: []string{
		"id", "submission_id", "entry_ts", "shift_date", "employee_number",
		"operator_name", "sales_order", "emblem_type", "qty", "notes",
		"day_qty", "day_sew_qty", "day_sticker_qty", "day_heat_seal_qty",
		"person_day_qty",
	},
}

// Definition exposes the report config to the controller layer
func Definition() *reportquery.Definition { return reportDef }

type EmblemRepository interface {
	ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
	InsertSubmission(ctx context.Context, sub *Submission) error
	GetSubmission(ctx context.Context, id int64) (*Submission, error)
}

type EmblemRepositoryImpl struct {
	db *sql.DB
}

func NewEmblemRepository(pg *database.PostgresDB) EmblemRepository {
	return &EmblemRepositoryImpl{db: pg.DB}
}

func (r *EmblemRepositoryImpl) ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return reportquery.Run(ctx, r.db, reportDef, q, time.Now())
}

func (r *EmblemRepositoryImpl) ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return reportquery.Export(ctx, r.db, reportDef, q, time.Now())
}

// InsertSubmission writes the header and all of its items in one transaction
// so a half-saved submission can never appear in reports
func (r *EmblemRepositoryImpl) InsertSubmission(ctx context.Context, sub *Submission) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO emblem_submissions
			(entry_ts, shift_date, employee_number, operator_name, sales_order, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		sub.EntryTs, sub.ShiftDate, sub.EmployeeNumber, sub.OperatorName,
		sub.SalesOrder, sub.Notes,
	).Scan(&sub.ID)
	if err != nil {
		return err
	}

	for i := range sub.Items {
		item := &sub.Items[i]
		item.SubmissionID = sub.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO emblem_items (submission_id, emblem_type, qty)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			item.SubmissionID, item.EmblemType, item.Qty,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *EmblemRepositoryImpl) GetSubmission(ctx context.Context, id int64) (*Submission, error) {
	var s Submission
	err := r.db.QueryRowContext(ctx,
		`SELECT id, entry_ts, shift_date, employee_number, operator_name, sales_order, notes
		 FROM emblem_submissions WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.EntryTs, &s.ShiftDate, &s.EmployeeNumber, &s.OperatorName,
		&s.SalesOrder, &s.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common_models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, submission_id, emblem_type, qty
		 FROM emblem_items WHERE submission_id = $1 ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s.Items = []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.SubmissionID, &item.EmblemType, &item.Qty); err != nil {
			return nil, err
		}
		s.Items = append(s.Items, item)
	}
	return &s, rows.Err()
}
