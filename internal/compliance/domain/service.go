package domain

import (
	"context"
	"errors"
)

type CreateGSTReturnRequest struct {
	ReturnType GSTReturnType `json:"return_type"`
	Period     string        `json:"period"`
	DueDate    string        `json:"due_date"`
	TaxAmount  float64       `json:"tax_amount"`
}

type CreateTDSRecordRequest struct {
	DeducteeName  string     `json:"deductee_name"`
	PAN           string     `json:"pan"`
	Section       TDSSection `json:"section"`
	PaymentAmount float64    `json:"payment_amount"`
	TDSAmount     float64    `json:"tds_amount"`
	DeductionDate string     `json:"deduction_date"`
}

type ListGSTReturnRequest struct {
	ReturnType string
	Status     string
	Period     string
}

type ListTDSRecordRequest struct {
	Section   string
	Deposited *bool
}

// GSTSummary rolls up the filing position across returns.
type GSTSummary struct {
	PendingCount  int64   `json:"pending_count"`
	FiledCount    int64   `json:"filed_count"`
	OverdueCount  int64   `json:"overdue_count"`
	PendingAmount float64 `json:"pending_amount"`
	FiledAmount   float64 `json:"filed_amount"`
}

// TDSSummary rolls up deduction and deposit totals.
type TDSSummary struct {
	RecordCount     int64   `json:"record_count"`
	TotalDeducted   float64 `json:"total_deducted"`
	DepositedAmount float64 `json:"deposited_amount"`
	PendingDeposit  float64 `json:"pending_deposit"`
}

type Service interface {
	CreateGSTReturn(context.Context, CreateGSTReturnRequest) (GSTReturn, error)
	ListGSTReturns(context.Context, ListGSTReturnRequest) ([]GSTReturn, error)
	FileGSTReturn(ctx context.Context, id string) (GSTReturn, error)
	GSTSummary(ctx context.Context) (GSTSummary, error)

	CreateTDSRecord(context.Context, CreateTDSRecordRequest) (TDSRecord, error)
	ListTDSRecords(context.Context, ListTDSRecordRequest) ([]TDSRecord, error)
	DepositTDS(ctx context.Context, id string) (TDSRecord, error)
	TDSSummary(ctx context.Context) (TDSSummary, error)
}

var (
	ErrInvalidReturnType = errors.New("invalid_return_type")
	ErrInvalidPeriod     = errors.New("invalid_period")
	ErrInvalidDueDate    = errors.New("invalid_due_date")
	ErrInvalidDeductee   = errors.New("invalid_deductee_name")
	ErrInvalidPAN        = errors.New("invalid_pan")
	ErrInvalidSection    = errors.New("invalid_tds_section")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrAlreadyFiled      = errors.New("return_already_filed")
	ErrAlreadyDeposited  = errors.New("tds_already_deposited")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
)
