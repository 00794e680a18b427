package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"stitchmes/internal/config"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Dev bootstrap: creates the schema if missing and loads demo employees plus
// a few entries per module so the report screens have something to show.

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	employee_number INTEGER PRIMARY KEY,
	name            TEXT NOT NULL,
	role            TEXT NOT NULL,
	password_hash   TEXT NOT NULL,
	active          BOOLEAN NOT NULL DEFAULT TRUE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS production_entries (
	id              BIGSERIAL PRIMARY KEY,
	entry_ts        TIMESTAMPTZ NOT NULL,
	shift_date      DATE NOT NULL,
	employee_number INTEGER NOT NULL,
	employee_name   TEXT NOT NULL,
	machine_number  INTEGER NOT NULL,
	sales_order     BIGINT NOT NULL DEFAULT 0,
	design_number   TEXT NOT NULL,
	pieces          INTEGER NOT NULL,
	stitch_count    BIGINT NOT NULL DEFAULT 0,
	is_sample       BOOLEAN NOT NULL DEFAULT FALSE,
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS qc_entries (
	id              BIGSERIAL PRIMARY KEY,
	entry_ts        TIMESTAMPTZ NOT NULL,
	shift_date      DATE NOT NULL,
	employee_number INTEGER NOT NULL,
	inspector_name  TEXT NOT NULL,
	sales_order     BIGINT NOT NULL DEFAULT 0,
	detail_number   INTEGER NOT NULL DEFAULT 0,
	qty_inspected   INTEGER NOT NULL,
	qty_passed      INTEGER NOT NULL DEFAULT 0,
	qty_rejected    INTEGER NOT NULL DEFAULT 0,
	defect_type     TEXT NOT NULL DEFAULT '',
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS emblem_submissions (
	id              BIGSERIAL PRIMARY KEY,
	entry_ts        TIMESTAMPTZ NOT NULL,
	shift_date      DATE NOT NULL,
	employee_number INTEGER NOT NULL,
	operator_name   TEXT NOT NULL,
	sales_order     BIGINT NOT NULL DEFAULT 0,
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS emblem_items (
	id            BIGSERIAL PRIMARY KEY,
	submission_id BIGINT NOT NULL REFERENCES emblem_submissions(id),
	emblem_type   TEXT NOT NULL,
	qty           INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS laser_entries (
	id              BIGSERIAL PRIMARY KEY,
	entry_ts        TIMESTAMPTZ NOT NULL,
	shift_date      DATE NOT NULL,
	employee_number INTEGER NOT NULL,
	operator_name   TEXT NOT NULL,
	sales_order     BIGINT NOT NULL DEFAULT 0,
	detail_number   INTEGER NOT NULL DEFAULT 0,
	material        TEXT NOT NULL,
	qty_cut         INTEGER NOT NULL,
	is_3d           BOOLEAN NOT NULL DEFAULT FALSE,
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS app_logs (
	id         BIGSERIAL PRIMARY KEY,
	app_id     TEXT NOT NULL,
	level      INTEGER NOT NULL,
	message    TEXT NOT NULL,
	request_id TEXT NOT NULL DEFAULT '',
	caller     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
`

type demoEmployee struct {
	number   int
	name     string
	role     string
	password string
}

var demoEmployees = []demoEmployee{
	{1001, "Alma Reyes", "admin", "admin123"},
	{2001, "Dana Whitfield", "manager", "manager123"},
	{3001, "Marisol Vega", "worker", "worker123"},
	{3002, "Theo Branch", "worker", "worker123"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("apply schema: %v", err)
	}
	log.Println("Schema applied")

	for _, e := range demoEmployees {
		hash, err := bcrypt.GenerateFromPassword([]byte(e.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO employees (employee_number, name, role, password_hash, active)
			 VALUES ($1, $2, $3, $4, TRUE)
			 ON CONFLICT (employee_number) DO NOTHING`,
			e.number, e.name, e.role, string(hash),
		)
		if err != nil {
			log.Fatalf("seed employee %d: %v", e.number, err)
		}
	}
	log.Printf("Seeded %d employees\n", len(demoEmployees))

	today := time.Now()
	shift := today.Format("2006-01-02")

	_, err = db.ExecContext(ctx,
		`INSERT INTO production_entries
			(entry_ts, shift_date, employee_number, employee_name, machine_number,
			 sales_order, design_number, pieces, stitch_count, is_sample, notes)
		 VALUES
			($1, $2, 3001, 'Marisol Vega', 4, 7001234, 'D-5521', 48, 192000, FALSE, 'first run'),
			($1, $2, 3002, 'Theo Branch', 2, 7001240, 'D-5524', 30, 90000, TRUE, 'sample, check thread tension')`,
		today, shift,
	)
	if err != nil {
		log.Fatalf("seed production: %v", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO qc_entries
			(entry_ts, shift_date, employee_number, inspector_name, sales_order,
			 detail_number, qty_inspected, qty_passed, qty_rejected, defect_type, notes)
		 VALUES
			($1, $2, 3001, 'Marisol Vega', 7001234, 11, 48, 46, 2, 'thread break', '')`,
		today, shift,
	)
	if err != nil {
		log.Fatalf("seed qc: %v", err)
	}

	var submissionID int64
	err = db.QueryRowContext(ctx,
		`INSERT INTO emblem_submissions
			(entry_ts, shift_date, employee_number, operator_name, sales_order, notes)
		 VALUES ($1, $2, 3002, 'Theo Branch', 7001240, '')
		 RETURNING id`,
		today, shift,
	).Scan(&submissionID)
	if err != nil {
		log.Fatalf("seed emblem submission: %v", err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO emblem_items (submission_id, emblem_type, qty) VALUES
			($1, 'sew', 20), ($1, 'heat_seal', 12)`,
		submissionID,
	)
	if err != nil {
		log.Fatalf("seed emblem items: %v", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO laser_entries
			(entry_ts, shift_date, employee_number, operator_name, sales_order,
			 detail_number, material, qty_cut, is_3d, notes)
		 VALUES
			($1, $2, 3001, 'Marisol Vega', 7001234, 11, 'twill', 60, FALSE, ''),
			($1, $2, 3002, 'Theo Branch', 7001240, 12, 'foam-backed twill', 24, TRUE, '3D batch')`,
		today, shift,
	)
	if err != nil {
		log.Fatalf("seed laser: %v", err)
	}

	log.Println("Demo data loaded")
}
