package reportquery

import "testing"

func TestResolveSort(t *testing.T) {
	def := testDefinition()

	tests := []struct {
		name string
		key  string
		dir  string
		want string
	}{
		{"Known Key Asc", "date", "asc", "shift_date ASC"},
		{"Known Key Desc", "pieces", "desc", "pieces DESC"},
		{"Case Insensitive Key", "DATE", "ASC", "shift_date ASC"},
		{"Unknown Key Falls Back", "password_hash", "asc", "entry_ts ASC"},
		{"Injection Attempt Falls Back", "id; DROP TABLE x", "asc", "entry_ts ASC"},
		{"Unknown Dir Is Desc", "date", "sideways", "shift_date DESC"},
		{"Empty Everything", "", "", "entry_ts DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSort(def, tt.key, tt.dir); got != tt.want {
				t.Errorf("ResolveSort(%q, %q) = %q, want %q", tt.key, tt.dir, got, tt.want)
			}
		})
	}
}
