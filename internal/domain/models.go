package domain

import (
	"encoding/json"
	"time"
)

// User represents a registered longshore worker.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	UnionLocal   string    `db:"union_local" json:"union_local"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Document is a stored paystub, timesheet, manning sheet or schedule belonging
// to a user. ExtractedData holds the raw JSON produced by the extraction
// pipeline for the document's category.
type Document struct {
	ID            int64            `db:"id" json:"id"`
	UserID        int64            `db:"user_id" json:"user_id"`
	Name          string           `db:"name" json:"name"`
	Type          string           `db:"type" json:"type"`
	FilePath      string           `db:"file_path" json:"file_path"`
	FileSize      int64            `db:"file_size" json:"file_size"`
	MimeType      string           `db:"mime_type" json:"mime_type"`
	Category      DocumentCategory `db:"category" json:"category"`
	ExtractedData json.RawMessage  `db:"extracted_data" json:"extracted_data"`
	ExtractStatus ExtractStatus    `db:"extract_status" json:"extract_status"`
	ExtractError  string           `db:"extract_error" json:"extract_error"`
	Notes         string           `db:"notes" json:"notes"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updated_at"`
}

// TimesheetEntry is one worked shift extracted from a timesheet or manning sheet.
type TimesheetEntry struct {
	ID         int64     `db:"id" json:"id,omitempty"`
	UserID     int64     `db:"user_id" json:"user_id,omitempty"`
	DocumentID int64     `db:"document_id" json:"document_id,omitempty"`
	Date       string    `db:"work_date" json:"date"`
	ShiftType  ShiftType `db:"shift_type" json:"shift_type"`
	Hours      float64   `db:"hours" json:"hours"`
	JobName    string    `db:"job_name" json:"job_name"`
	Earnings   *float64  `db:"earnings" json:"earnings,omitempty"`
	Location   string    `db:"location" json:"location,omitempty"`
	Ship       string    `db:"ship" json:"ship,omitempty"`
}

// PaystubLineItem is one row of a paystub's earnings table.
type PaystubLineItem struct {
	Date   string      `json:"date"`
	Type   EarningType `json:"type"`
	Rate   float64     `json:"rate"`
	Hours  float64     `json:"hours"`
	Amount float64     `json:"amount"`
}

// PaystubData aggregates the current-period values extracted from a paystub.
// HoursWorked mirrors TotalHours for callers still reading the older flat shape.
type PaystubData struct {
	LineItems      []PaystubLineItem `json:"line_items"`
	GrossPay       *float64          `json:"gross_pay"`
	NetPay         *float64          `json:"net_pay"`
	TotalHours     *float64          `json:"total_hours"`
	HoursWorked    *float64          `json:"hours_worked,omitempty"`
	FederalTax     *float64          `json:"federal_tax"`
	ProvincialTax  *float64          `json:"provincial_tax"`
	CPP            *float64          `json:"cpp"`
	EI             *float64          `json:"ei"`
	UnionDues      *float64          `json:"union_dues"`
	OtherDeduction *float64          `json:"other_deductions"`
	PayPeriodStart string            `json:"pay_period_start"`
	PayPeriodEnd   string            `json:"pay_period_end"`
}

// StatHoliday is one statutory holiday with its qualification window.
type StatHoliday struct {
	ID                 int64  `db:"id" json:"id,omitempty"`
	Year               int    `db:"year" json:"-"`
	Name               string `db:"name" json:"name"`
	Date               string `db:"holiday_date" json:"date"`
	QualificationStart string `db:"qualification_start" json:"qualification_start"`
	QualificationEnd   string `db:"qualification_end" json:"qualification_end"`
	PayDate            string `db:"pay_date" json:"pay_date,omitempty"`
}

// StatSchedule is a full year's statutory holiday schedule.
type StatSchedule struct {
	Year     int           `json:"year"`
	Holidays []StatHoliday `json:"holidays"`
}
