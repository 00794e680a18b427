package reportquery

import (
	"testing"
)

func getter(params map[string]string) func(string) string {
	return func(key string) string {
		return params[key]
	}
}

func TestParseQueryPagination(t *testing.T) {
	def := testDefinition()

	tests := []struct {
		name         string
		params       map[string]string
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "Defaults",
			params:       map[string]string{},
			wantPage:     1,
			wantPageSize: 50,
		},
		{
			name:         "Explicit Values",
			params:       map[string]string{"page": "3", "pageSize": "25"},
			wantPage:     3,
			wantPageSize: 25,
		},
		{
			name:         "Garbage Page Falls Back",
			params:       map[string]string{"page": "banana"},
			wantPage:     1,
			wantPageSize: 50,
		},
		{
			name:         "Negative Page Clamped",
			params:       map[string]string{"page": "-4"},
			wantPage:     1,
			wantPageSize: 50,
		},
		{
			name:         "Page Size Below Min",
			params:       map[string]string{"pageSize": "2"},
			wantPage:     1,
			wantPageSize: 10,
		},
		{
			name:         "Page Size Above Max",
			params:       map[string]string{"pageSize": "9999"},
			wantPage:     1,
			wantPageSize: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseQuery(getter(tt.params), def)
			if q.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", q.Page, tt.wantPage)
			}
			if q.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", q.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestParseQueryDates(t *testing.T) {
	def := testDefinition()

	t.Run("Valid Range", func(t *testing.T) {
		q := ParseQuery(getter(map[string]string{"start": "2025-01-01", "end": "2025-01-31"}), def)
		if q.Start == nil || q.Start.Format(dateLayout) != "2025-01-01" {
			t.Errorf("Start = %v, want 2025-01-01", q.Start)
		}
		if q.End == nil || q.End.Format(dateLayout) != "2025-01-31" {
			t.Errorf("End = %v, want 2025-01-31", q.End)
		}
	})

	t.Run("Malformed Dates Dropped", func(t *testing.T) {
		q := ParseQuery(getter(map[string]string{"start": "01/31/2025", "end": "soon"}), def)
		if q.Start != nil || q.End != nil {
			t.Errorf("malformed dates should be dropped, got Start=%v End=%v", q.Start, q.End)
		}
	})

	t.Run("All Flag", func(t *testing.T) {
		if q := ParseQuery(getter(map[string]string{"all": "1"}), def); !q.AllTime {
			t.Error("all=1 should set AllTime")
		}
		if q := ParseQuery(getter(map[string]string{"all": "true"}), def); q.AllTime {
			t.Error("only the literal 1 enables AllTime")
		}
	})
}

func TestParseQueryFilters(t *testing.T) {
	def := testDefinition()

	q := ParseQuery(getter(map[string]string{
		"design":  "  D-55 ",
		"so":      "7001",
		"sample":  "",
		"evil":    "1; DROP TABLE production_entries",
		"column":  "id",
		"unknown": "x",
	}), def)

	if got := q.FieldValues["design"]; got != "D-55" {
		t.Errorf("design = %q, want trimmed %q", got, "D-55")
	}
	if got := q.FieldValues["so"]; got != "7001" {
		t.Errorf("so = %q, want %q", got, "7001")
	}
	if _, ok := q.FieldValues["sample"]; ok {
		t.Error("empty values should be dropped")
	}
	if len(q.FieldValues) != 2 {
		t.Errorf("only allow-listed params may survive, got %v", q.FieldValues)
	}
}

func TestParseQueryFormat(t *testing.T) {
	def := testDefinition()

	tests := []struct {
		in   string
		want string
	}{
		{"", FormatJSON},
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"xlsx", FormatXLSX},
		{"pdf", FormatJSON},
	}
	for _, tt := range tests {
		q := ParseQuery(getter(map[string]string{"format": tt.in}), def)
		if q.Format != tt.want {
			t.Errorf("format=%q parsed as %q, want %q", tt.in, q.Format, tt.want)
		}
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page, size, want int
	}{
		{1, 50, 0},
		{2, 50, 50},
		{4, 25, 75},
	}
	for _, tt := range tests {
		q := Query{Page: tt.page, PageSize: tt.size}
		if got := q.Offset(); got != tt.want {
			t.Errorf("Offset(page=%d,size=%d) = %d, want %d", tt.page, tt.size, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 50, 0},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{101, 25, 5},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}
