package reportquery

import (
	"fmt"
	"strings"
	"time"
)

// defaultRangeDays is the window applied when no explicit range is given
const defaultRangeDays = 30

// Predicate is an immutable WHERE clause with positional $N placeholders.
// The same predicate must back the count, totals, paged, and export queries
// so the numbers a user sees always agree with the rows they see.
type Predicate struct {
	SQL  string
	Args []interface{}
}

// BuildPredicate converts a parsed query into a Predicate. It is a pure
// function: all placeholder bookkeeping is local, nothing is mutated between
// calls. Column names come exclusively from the Definition allow-lists.
func BuildPredicate(def *Definition, q Query, now time.Time) Predicate {
	var conds []string
	var args []interface{}

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	// Date range: explicit bounds win, all=1 removes the range entirely,
	// otherwise default to the trailing 30 days
	if !q.AllTime {
		switch {
		case q.Start != nil || q.End != nil:
			if q.Start != nil {
				conds = append(conds, fmt.Sprintf("%s >= %s", def.DateColumn, next(q.Start.Format(dateLayout))))
			}
			if q.End != nil {
				conds = append(conds, fmt.Sprintf("%s <= %s", def.DateColumn, next(q.End.Format(dateLayout))))
			}
		default:
			start := now.AddDate(0, 0, -defaultRangeDays)
			conds = append(conds, fmt.Sprintf("%s >= %s", def.DateColumn, next(start.Format(dateLayout))))
			conds = append(conds, fmt.Sprintf("%s <= %s", def.DateColumn, next(now.Format(dateLayout))))
		}
	}

	// Per-field filters, in allow-list order so placeholder positions are stable
	for _, f := range def.Filters {
		v, ok := q.FieldValues[f.Param]
		if !ok {
			continue
		}
		switch f.Mode {
		case Contains:
			conds = append(conds, fmt.Sprintf("%s ILIKE %s", f.Column, next("%"+v+"%")))
		case TextCast:
			conds = append(conds, fmt.Sprintf("CAST(%s AS TEXT) ILIKE %s", f.Column, next("%"+v+"%")))
		case Boolean:
			b, ok := parseBool(v)
			if !ok {
				// unrecognized spelling means no constraint, not "match nothing"
				continue
			}
			conds = append(conds, fmt.Sprintf("%s = %s", f.Column, next(b)))
		}
	}

	// Free-text search: one grouped OR across the module's search columns,
	// ANDed with everything else. The pattern is bound once and the
	// placeholder reused for every column.
	if q.Search != "" {
		ph := next("%" + q.Search + "%")
		ors := make([]string, 0, len(def.SearchColumns))
		for _, col := range def.SearchColumns {
			ors = append(ors, fmt.Sprintf("%s ILIKE %s", col, ph))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if len(conds) == 0 {
		return Predicate{SQL: "TRUE"}
	}
	return Predicate{SQL: strings.Join(conds, " AND "), Args: args}
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	default:
		return false, false
	}
}
