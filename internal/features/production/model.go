package production

import "time"

// Entry is one logged embroidery production event
type Entry struct {
	ID             int64     `json:"id"`
	EntryTs        time.Time `json:"entry_ts"`
	ShiftDate      time.Time `json:"shift_date"`
	EmployeeNumber int       `json:"employee_number"`
	EmployeeName   string    `json:"employee_name"`
	MachineNumber  int       `json:"machine_number"`
	SalesOrder     int64     `json:"sales_order"`
	DesignNumber   string    `json:"design_number"`
	Pieces         int       `json:"pieces"`
	StitchCount    int64     `json:"stitch_count"`
	IsSample       bool      `json:"is_sample"`
	Notes          string    `json:"notes"`
}

// CreateEntryInput is the form payload for logging a production event.
// EntryTs is optional and defaults to submission time; ShiftDate arrives
// precomputed from the form (shift-boundary rules live upstream).
type CreateEntryInput struct {
	EntryTs       string `json:"entry_ts"`
	ShiftDate     string `json:"shift_date"`
	MachineNumber int    `json:"machine_number"`
	SalesOrder    int64  `json:"sales_order"`
	DesignNumber  string `json:"design_number"`
	Pieces        int    `json:"pieces"`
	StitchCount   int64  `json:"stitch_count"`
	IsSample      bool   `json:"is_sample"`
	Notes         string `json:"notes"`
}
