package reportquery

// CompareMode fixes how a filter field is matched. Each allow-listed field has
// exactly one mode; the client only supplies values, never column names.
type CompareMode int

const (
	// Contains matches case-insensitively on a substring (ILIKE '%v%')
	Contains CompareMode = iota
	// TextCast matches a substring against the text form of a numeric column,
	// so users can type partial sales orders or employee numbers
	TextCast
	// Boolean matches exactly, accepting true/1/yes and false/0/no spellings
	Boolean
)

// FilterField maps a client-facing query param to a trusted SQL column
type FilterField struct {
	Param  string
	Column string
	Mode   CompareMode
}

// Definition is the per-module configuration consumed by the report engine.
// Every SQL fragment in here is hard-coded at the call site; none of it may
// ever be derived from request input.
type Definition struct {
	Name string // module slug, used for export filenames

	// From is the table or join the report selects from
	From string
	// SelectList is the row-level select including window-function aggregates
	SelectList string
	// TotalsList is the aggregate select for the grand-totals query
	TotalsList string

	// DateColumn carries the shift date the range filter applies to
	DateColumn string

	Filters       []FilterField
	SearchColumns []string // expressions OR-combined for the q parameter

	SortKeys    map[string]string // client sort key -> trusted expression
	DefaultSort string            // trusted expression, used on unknown keys

	DefaultPageSize int
	MinPageSize     int
	MaxPageSize     int

	CSVColumns []string // output column order for csv/xlsx exports
}

// ExportFilename returns the fixed attachment name for this module
func (d *Definition) ExportFilename(ext string) string {
	return d.Name + "-all." + ext
}
