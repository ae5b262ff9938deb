package domain

import (
	"context"
	"errors"
)

type CreateExpenseRequest struct {
	ExpenseTitle      string        `json:"expense_title"`
	ProjectCostCenter string        `json:"project_cost_center"`
	Items             []ExpenseItem `json:"items"`
	SubmittedBy       *string       `json:"submitted_by"`
	Notes             *string       `json:"notes"`
	Department        *string       `json:"department"`
}

type UpdateExpenseRequest struct {
	ID                string
	ExpenseTitle      *string        `json:"expense_title"`
	ProjectCostCenter *string        `json:"project_cost_center"`
	Items             *[]ExpenseItem `json:"items"`
	Notes             *string        `json:"notes"`
	Department        *string        `json:"department"`
}

type SubmitExpenseRequest struct {
	SubmittedBy string `json:"submitted_by"`
}

// ReviewExpenseRequest approves or rejects a submitted expense. A rejection
// must carry a reason.
type ReviewExpenseRequest struct {
	Approve         bool    `json:"approve"`
	ReviewedBy      string  `json:"reviewed_by"`
	RejectionReason *string `json:"rejection_reason"`
}

type ListExpenseRequest struct {
	Status            string
	ProjectCostCenter string
	FromDate          string
	ToDate            string
}

type ListExpenseResponse struct {
	Expenses []Expense `json:"expenses"`
}

// ExpenseSummary aggregates expense reports across statuses.
type ExpenseSummary struct {
	TotalCount       int64   `json:"total_count"`
	TotalAmount      float64 `json:"total_amount"`
	TotalTax         float64 `json:"total_tax"`
	DraftCount       int64   `json:"draft_count"`
	SubmittedCount   int64   `json:"submitted_count"`
	ApprovedCount    int64   `json:"approved_count"`
	RejectedCount    int64   `json:"rejected_count"`
	ReimbursedCount  int64   `json:"reimbursed_count"`
	PendingAmount    float64 `json:"pending_amount"`
	ReimbursedAmount float64 `json:"reimbursed_amount"`
}

// ProjectExpenseStat aggregates spend per project cost center.
type ProjectExpenseStat struct {
	ProjectCostCenter string  `json:"project_cost_center"`
	ExpenseCount      int64   `json:"expense_count"`
	TotalAmount       float64 `json:"total_amount"`
	TotalTax          float64 `json:"total_tax"`
}

// CategoryExpenseStat aggregates spend per expense category across all
// report items. Items live in a JSON column, so this is folded in memory.
type CategoryExpenseStat struct {
	ExpenseCategory string  `json:"expense_category"`
	ItemCount       int64   `json:"item_count"`
	TotalAmount     float64 `json:"total_amount"`
	TotalTax        float64 `json:"total_tax"`
}

type Service interface {
	Create(context.Context, CreateExpenseRequest) (Expense, error)
	List(context.Context, ListExpenseRequest) (ListExpenseResponse, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	Update(context.Context, UpdateExpenseRequest) (Expense, error)
	Delete(ctx context.Context, id string) error
	Submit(ctx context.Context, id string, req SubmitExpenseRequest) (Expense, error)
	Review(ctx context.Context, id string, req ReviewExpenseRequest) (Expense, error)
	Reimburse(ctx context.Context, id string) (Expense, error)
	Summary(ctx context.Context) (ExpenseSummary, error)
	ProjectStats(ctx context.Context) ([]ProjectExpenseStat, error)
	CategoryStats(ctx context.Context) ([]CategoryExpenseStat, error)
}

var (
	ErrInvalidTitle      = errors.New("invalid_expense_title")
	ErrInvalidCostCenter = errors.New("invalid_project_cost_center")
	ErrInvalidItems      = errors.New("invalid_expense_items")
	ErrInvalidAmount     = errors.New("invalid_expense_amount")
	ErrInvalidReason     = errors.New("invalid_rejection_reason")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotEditable       = errors.New("expense_not_editable")
	ErrNotSubmittable    = errors.New("expense_not_submittable")
	ErrNotReviewable     = errors.New("expense_not_reviewable")
	ErrNotReimbursable   = errors.New("expense_not_reimbursable")
	ErrNotFound          = errors.New("not_found")
)
