package emblem

import "time"

// Emblem application types. "sew" vs "sticker" vs "heat_seal" drives the
// category sub-totals in the report.
const (
	TypeSew      = "sew"
	TypeSticker  = "sticker"
	TypeHeatSeal = "heat_seal"
)

// Submission is the header record grouping the line items logged together
type Submission struct {
	ID             int64     `json:"id"`
	EntryTs        time.Time `json:"entry_ts"`
	ShiftDate      time.Time `json:"shift_date"`
	EmployeeNumber int       `json:"employee_number"`
	OperatorName   string    `json:"operator_name"`
	SalesOrder     int64     `json:"sales_order"`
	Notes          string    `json:"notes"`
	Items          []Item    `json:"items"`
}

// Item is one emblem line within a submission
type Item struct {
	ID           int64  `json:"id"`
	SubmissionID int64  `json:"submission_id"`
	EmblemType   string `json:"emblem_type"`
	Qty          int    `json:"qty"`
}

type ItemInput struct {
	EmblemType string `json:"emblem_type"`
	Qty        int    `json:"qty"`
}

type CreateSubmissionInput struct {
	EntryTs    string      `json:"entry_ts"`
	ShiftDate  string      `json:"shift_date"`
	SalesOrder int64       `json:"sales_order"`
	Notes      string      `json:"notes"`
	Items      []ItemInput `json:"items"`
}
