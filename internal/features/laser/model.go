package laser

import "time"

// Entry is one laser cutting record. IsThreeD distinguishes 3D-cut emblems
// from flat cuts and drives the flat/3D sub-totals.
type Entry struct {
	ID             int64     `json:"id"`
	EntryTs        time.Time `json:"entry_ts"`
	ShiftDate      time.Time `json:"shift_date"`
	EmployeeNumber int       `json:"employee_number"`
	OperatorName   string    `json:"operator_name"`
	SalesOrder     int64     `json:"sales_order"`
	DetailNumber   int       `json:"detail_number"`
	Material       string    `json:"material"`
	QtyCut         int       `json:"qty_cut"`
	IsThreeD       bool      `json:"is_3d"`
	Notes          string    `json:"notes"`
}

type CreateEntryInput struct {
	EntryTs      string `json:"entry_ts"`
	ShiftDate    string `json:"shift_date"`
	SalesOrder   int64  `json:"sales_order"`
	DetailNumber int    `json:"detail_number"`
	Material     string `json:"material"`
	QtyCut       int    `json:"qty_cut"`
	IsThreeD     bool   `json:"is_3d"`
	Notes        string `json:"notes"`
}
