package reportquery

import (
	"fmt"
	"strings"
	"time"
)

// EscapeField applies minimal RFC 4180 escaping: wrap in double quotes and
// double internal quotes only when the field contains a comma, quote, or
// newline. Everything else passes through untouched.
func EscapeField(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// RenderCSV serializes the full row set into CSV text: a header line of the
// module's fixed column order followed by one line per row.
func RenderCSV(columns []string, rows []map[string]interface{}) []byte {
	var b strings.Builder

	b.WriteString(strings.Join(columns, ","))
	b.WriteString("\n")

	for _, row := range rows {
		for i, col := range columns {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(EscapeField(FormatValue(row[col])))
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// FormatValue renders a scanned SQL value for export. Nulls become the empty
// string; date-only timestamps drop the zero time component.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04:05")
	case bool:
		if val {
			return "true"
		}
		return "false"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
