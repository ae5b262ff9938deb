// Package domain contains persistence models for expense reports.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ExpenseStatus represents the expense report workflow states.
type ExpenseStatus string

const (
	ExpenseStatusDraft      ExpenseStatus = "DRAFT"
	ExpenseStatusSubmitted  ExpenseStatus = "SUBMITTED"
	ExpenseStatusApproved   ExpenseStatus = "APPROVED"
	ExpenseStatusRejected   ExpenseStatus = "REJECTED"
	ExpenseStatusReimbursed ExpenseStatus = "REIMBURSED"
)

// ExpenseItem is one expense sub-item (a receipt line).
type ExpenseItem struct {
	ExpenseCategory  string   `json:"expense_category"`
	Currency         string   `json:"currency"`
	Amount           float64  `json:"amount"`
	ExpenseDate      string   `json:"expense_date"`
	Comment          string   `json:"comment"`
	ReceiptFile      *string  `json:"receipt_file,omitempty"`
	OriginalFilename *string  `json:"original_filename,omitempty"`
	PaymentMethod    *string  `json:"payment_method,omitempty"`
	Vendor           *string  `json:"vendor,omitempty"`
	Billable         bool     `json:"billable"`
	TaxAmount        *float64 `json:"tax_amount,omitempty"`
}

// TotalWithTax returns the item amount including tax, if any.
func (i ExpenseItem) TotalWithTax() float64 {
	if i.TaxAmount == nil {
		return i.Amount
	}
	return i.Amount + *i.TaxAmount
}

// Expense is a full expense report.
type Expense struct {
	ID                snowflake.ID                     `gorm:"primaryKey" json:"id"`
	ExpenseTitle      string                           `gorm:"not null" json:"expense_title"`
	ProjectCostCenter string                           `gorm:"not null;index" json:"project_cost_center"`
	Items             datatypes.JSONSlice[ExpenseItem] `gorm:"not null" json:"items"`
	TotalAmount       float64                          `gorm:"not null;default:0" json:"total_amount"`
	TotalTax          float64                          `gorm:"not null;default:0" json:"total_tax"`
	Status            ExpenseStatus                    `gorm:"not null;default:'DRAFT'" json:"status"`
	SubmittedBy       *string                          `json:"submitted_by,omitempty"`
	ApprovedBy        *string                          `json:"approved_by,omitempty"`
	SubmittedAt       *time.Time                       `json:"submitted_at,omitempty"`
	ReviewedAt        *time.Time                       `json:"reviewed_at,omitempty"`
	RejectionReason   *string                          `json:"rejection_reason,omitempty"`
	ReimbursedAt      *time.Time                       `json:"reimbursed_at,omitempty"`
	Notes             *string                          `json:"notes,omitempty"`
	Department        *string                          `json:"department,omitempty"`
	CreatedAt         time.Time                        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time                        `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Expense) TableName() string { return "expenses" }

// CalculateTotals recomputes total amount and tax from the item list.
func (e *Expense) CalculateTotals() {
	var amount, tax float64
	for _, item := range e.Items {
		amount += item.Amount
		if item.TaxAmount != nil {
			tax += *item.TaxAmount
		}
	}
	e.TotalAmount = amount
	e.TotalTax = tax
}

// GrandTotal is the report total including tax.
func (e *Expense) GrandTotal() float64 {
	return e.TotalAmount + e.TotalTax
}

// IsEditable reports whether the expense can still be modified.
func (e *Expense) IsEditable() bool {
	return e.Status == ExpenseStatusDraft
}

// CanSubmit reports whether the expense can be submitted for approval.
func (e *Expense) CanSubmit() bool {
	return e.Status == ExpenseStatusDraft && len(e.Items) > 0
}

// CanReview reports whether the expense can be approved or rejected.
func (e *Expense) CanReview() bool {
	return e.Status == ExpenseStatusSubmitted
}

// CanReimburse reports whether the expense can be marked reimbursed.
func (e *Expense) CanReimburse() bool {
	return e.Status == ExpenseStatusApproved
}
