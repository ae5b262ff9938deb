// Package domain contains persistence models for GST and TDS compliance
// tracking.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// GSTReturnType identifies the return form.
type GSTReturnType string

const (
	GSTReturnGSTR1  GSTReturnType = "GSTR-1"
	GSTReturnGSTR3B GSTReturnType = "GSTR-3B"
)

// GSTReturnStatus tracks a return through filing.
type GSTReturnStatus string

const (
	GSTReturnStatusPending GSTReturnStatus = "pending"
	GSTReturnStatusFiled   GSTReturnStatus = "filed"
	GSTReturnStatusOverdue GSTReturnStatus = "overdue"
)

// GSTReturn is one periodic GST filing obligation.
type GSTReturn struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	ReturnType GSTReturnType   `gorm:"not null;index" json:"return_type"`
	Period     string          `gorm:"not null;index" json:"period"`
	DueDate    string          `gorm:"not null" json:"due_date"`
	Status     GSTReturnStatus `gorm:"not null;default:'pending'" json:"status"`
	TaxAmount  float64         `gorm:"not null;default:0" json:"tax_amount"`
	FiledAt    *time.Time      `json:"filed_at,omitempty"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GSTReturn) TableName() string { return "gst_returns" }

// EffectiveStatus derives the status shown to callers. Stored rows only move
// between pending and filed; a pending return past its due date reads as
// overdue. Due dates are ISO dates, so string comparison orders them.
func (r GSTReturn) EffectiveStatus(now time.Time) GSTReturnStatus {
	if r.Status == GSTReturnStatusPending && r.DueDate != "" &&
		r.DueDate < now.UTC().Format("2006-01-02") {
		return GSTReturnStatusOverdue
	}
	return r.Status
}

// TDSSection is the Income Tax Act section under which tax was deducted.
type TDSSection string

const (
	TDSSection194J TDSSection = "194J"
	TDSSection194C TDSSection = "194C"
)

// TDSRecord is one tax-deducted-at-source entry.
type TDSRecord struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	DeducteeName  string       `gorm:"not null" json:"deductee_name"`
	PAN           string       `gorm:"column:pan;not null" json:"pan"`
	Section       TDSSection   `gorm:"not null;index" json:"section"`
	PaymentAmount float64      `gorm:"not null;default:0" json:"payment_amount"`
	TDSAmount     float64      `gorm:"column:tds_amount;not null;default:0" json:"tds_amount"`
	DeductionDate string       `gorm:"not null" json:"deduction_date"`
	Deposited     bool         `gorm:"not null;default:false" json:"deposited"`
	DepositedAt   *time.Time   `json:"deposited_at,omitempty"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (TDSRecord) TableName() string { return "tds_records" }
