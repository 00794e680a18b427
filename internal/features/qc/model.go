package qc

import "time"

// Entry is one QC inspection record
type Entry struct {
	ID             int64     `json:"id"`
	EntryTs        time.Time `json:"entry_ts"`
	ShiftDate      time.Time `json:"shift_date"`
	EmployeeNumber int       `json:"employee_number"`
	InspectorName  string    `json:"inspector_name"`
	SalesOrder     int64     `json:"sales_order"`
	DetailNumber   int       `json:"detail_number"`
	QtyInspected   int       `json:"qty_inspected"`
	QtyPassed      int       `json:"qty_passed"`
	QtyRejected    int       `json:"qty_rejected"`
	DefectType     string    `json:"defect_type"`
	Notes          string    `json:"notes"`
}

type CreateEntryInput struct {
	EntryTs      string `json:"entry_ts"`
	ShiftDate    string `json:"shift_date"`
	SalesOrder   int64  `json:"sales_order"`
	DetailNumber int    `json:"detail_number"`
	QtyInspected int    `json:"qty_inspected"`
	QtyPassed    int    `json:"qty_passed"`
	QtyRejected  int    `json:"qty_rejected"`
	DefectType   string `json:"defect_type"`
	Notes        string `json:"notes"`
}
