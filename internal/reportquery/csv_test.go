package reportquery

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "hello", "hello"},
		{"Empty", "", ""},
		{"Comma", "a,b", `"a,b"`},
		{"Quote", `say "hi"`, `"say ""hi"""`},
		{"Comma And Quote", `Hello, "World"`, `"Hello, ""World"""`},
		{"Newline", "line1\nline2", "\"line1\nline2\""},
		{"Carriage Return", "a\rb", "\"a\rb\""},
		{"Unicode Untouched", "vêtements", "vêtements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeField(tt.in); got != tt.want {
				t.Errorf("EscapeField(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderCSV(t *testing.T) {
	columns := []string{"shift_date", "employee_name", "pieces", "notes"}
	rows := []map[string]interface{}{
		{
			"shift_date":    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			"employee_name": "Marisol Vega",
			"pieces":        int64(48),
			"notes":         `rush, "priority"`,
		},
		{
			"shift_date":    time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			"employee_name": "Theo Branch",
			"pieces":        int64(30),
			"notes":         nil,
		},
	}

	out := string(RenderCSV(columns, rows))

	want := "shift_date,employee_name,pieces,notes\n" +
		"2025-06-15,Marisol Vega,48,\"rush, \"\"priority\"\"\"\n" +
		"2025-06-16,Theo Branch,30,\n"
	if out != want {
		t.Errorf("RenderCSV =\n%q\nwant\n%q", out, want)
	}

	// output must survive a standard CSV parse
	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output does not parse as CSV: %v", err)
	}
	if len(parsed) != 3 {
		t.Fatalf("parsed %d records, want 3", len(parsed))
	}
	if got := parsed[1][3]; got != `rush, "priority"` {
		t.Errorf("round-tripped field = %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"Nil", nil, ""},
		{"Date Only", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "2025-06-15"},
		{"Timestamp", time.Date(2025, 6, 15, 14, 5, 9, 0, time.UTC), "2025-06-15 14:05:09"},
		{"Bool True", true, "true"},
		{"Bool False", false, "false"},
		{"Bytes", []byte("D-5521"), "D-5521"},
		{"Int64", int64(192000), "192000"},
		{"Float", 12.5, "12.5"},
		{"String", "twill", "twill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExportFilename(t *testing.T) {
	def := testDefinition()
	if got := def.ExportFilename("csv"); got != "production-all.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
	if got := def.ExportFilename("xlsx"); got != "production-all.xlsx" {
		t.Errorf("ExportFilename = %q", got)
	}
}

func TestRenderXLSX(t *testing.T) {
	columns := []string{"shift_date", "pieces"}
	rows := []map[string]interface{}{
		{"shift_date": time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "pieces": int64(48)},
	}

	out, err := RenderXLSX(columns, rows)
	if err != nil {
		t.Fatalf("RenderXLSX: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty workbook")
	}
	// xlsx files are zip archives
	if string(out[:2]) != "PK" {
		t.Errorf("workbook does not start with zip magic, got % x", out[:2])
	}
}
