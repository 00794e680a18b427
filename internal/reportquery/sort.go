package reportquery

import "strings"

// ResolveSort maps a client sort key to a trusted ORDER BY clause. Unknown
// keys fall back to the module default, unknown directions to DESC.
func ResolveSort(def *Definition, key, dir string) string {
	expr, ok := def.SortKeys[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		expr = def.DefaultSort
	}

	direction := "DESC"
	if strings.EqualFold(strings.TrimSpace(dir), "asc") {
		direction = "ASC"
	}

	return expr + " " + direction
}
