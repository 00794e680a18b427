package reportquery

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Format selects the response body of a report request
const (
	FormatJSON = ""
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Query is the parsed, request-scoped report query. It is rebuilt from the
// query string on every request and never persisted.
type Query struct {
	Start   *time.Time
	End     *time.Time
	AllTime bool

	Search      string
	FieldValues map[string]string // param -> raw value, empty values dropped

	SortKey string
	SortDir string

	Page     int
	PageSize int

	Format string
}

// ParseQuery builds a Query from raw query-string parameters. Malformed
// pagination, sort, and date inputs are clamped or dropped, never rejected:
// reports must stay usable under stale or hand-edited UI state.
func ParseQuery(get func(key string) string, def *Definition) Query {
	q := Query{
		AllTime:     get("all") == "1",
		Search:      strings.TrimSpace(get("q")),
		FieldValues: make(map[string]string),
		SortKey:     get("sort"),
		SortDir:     get("dir"),
		Format:      parseFormat(get("format")),
	}

	if t, err := time.Parse(dateLayout, get("start")); err == nil {
		q.Start = &t
	}
	if t, err := time.Parse(dateLayout, get("end")); err == nil {
		q.End = &t
	}

	for _, f := range def.Filters {
		if v := strings.TrimSpace(get(f.Param)); v != "" {
			q.FieldValues[f.Param] = v
		}
	}

	q.Page = parseIntDefault(get("page"), 1)
	if q.Page < 1 {
		q.Page = 1
	}

	q.PageSize = parseIntDefault(get("pageSize"), def.DefaultPageSize)
	q.PageSize = clamp(q.PageSize, def.MinPageSize, def.MaxPageSize)

	return q
}

func parseFormat(v string) string {
	switch strings.ToLower(v) {
	case FormatCSV:
		return FormatCSV
	case FormatXLSX:
		return FormatXLSX
	default:
		return FormatJSON
	}
}

func parseIntDefault(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
