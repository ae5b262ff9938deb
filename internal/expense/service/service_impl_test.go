package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/expense/domain"
	"github.com/fessit/financesuite/internal/expense/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.Expense{})
	require.NoError(t, err)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func sampleRequest() domain.CreateExpenseRequest {
	tax := 90.0
	vendor := "Indigo"
	return domain.CreateExpenseRequest{
		ExpenseTitle:      "Client visit Q2",
		ProjectCostCenter: "CC-1042",
		Items: []domain.ExpenseItem{
			{
				ExpenseCategory: "Travel",
				Currency:        "INR",
				Amount:          5400,
				ExpenseDate:     "2026-04-12",
				Comment:         "Flight BLR-DEL",
				Vendor:          &vendor,
				Billable:        true,
				TaxAmount:       &tax,
			},
			{
				ExpenseCategory: "Meals",
				Currency:        "INR",
				Amount:          850,
				ExpenseDate:     "2026-04-12",
				Billable:        false,
			},
		},
	}
}

func TestCreateExpenseComputesTotals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	expense, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.ExpenseStatusDraft, expense.Status)
	assert.Equal(t, 6250.0, expense.TotalAmount)
	assert.Equal(t, 90.0, expense.TotalTax)
	assert.Equal(t, 6340.0, expense.GrandTotal())
	assert.NotZero(t, expense.ID)
}

func TestCreateExpenseValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := sampleRequest()
	req.ExpenseTitle = "  "
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)

	req = sampleRequest()
	req.ProjectCostCenter = ""
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidCostCenter)

	req = sampleRequest()
	req.Items = nil
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidItems)

	req = sampleRequest()
	req.Items[0].Amount = -10
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestUpdateExpenseRecalculatesTotals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	expense, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	items := []domain.ExpenseItem{
		{ExpenseCategory: "Travel", Currency: "INR", Amount: 1200, ExpenseDate: "2026-04-13"},
	}
	updated, err := svc.Update(ctx, domain.UpdateExpenseRequest{
		ID:    expense.ID.String(),
		Items: &items,
	})
	require.NoError(t, err)

	assert.Equal(t, 1200.0, updated.TotalAmount)
	assert.Equal(t, 0.0, updated.TotalTax)
	assert.Equal(t, expense.ExpenseTitle, updated.ExpenseTitle)
}

func TestExpenseWorkflow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	expense, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	// Draft cannot be approved or reimbursed.
	_, err = svc.Review(ctx, expense.ID.String(), domain.ReviewExpenseRequest{Approve: true, ReviewedBy: "manager"})
	assert.ErrorIs(t, err, domain.ErrNotReviewable)
	_, err = svc.Reimburse(ctx, expense.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotReimbursable)

	submitted, err := svc.Submit(ctx, expense.ID.String(), domain.SubmitExpenseRequest{SubmittedBy: "asha"})
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStatusSubmitted, submitted.Status)
	require.NotNil(t, submitted.SubmittedAt)
	require.NotNil(t, submitted.SubmittedBy)
	assert.Equal(t, "asha", *submitted.SubmittedBy)

	// Submitted reports are frozen.
	_, err = svc.Update(ctx, domain.UpdateExpenseRequest{ID: expense.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotEditable)
	err = svc.Delete(ctx, expense.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotEditable)
	_, err = svc.Submit(ctx, expense.ID.String(), domain.SubmitExpenseRequest{})
	assert.ErrorIs(t, err, domain.ErrNotSubmittable)

	approved, err := svc.Review(ctx, expense.ID.String(), domain.ReviewExpenseRequest{Approve: true, ReviewedBy: "manager"})
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "manager", *approved.ApprovedBy)

	reimbursed, err := svc.Reimburse(ctx, expense.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStatusReimbursed, reimbursed.Status)
	require.NotNil(t, reimbursed.ReimbursedAt)
}

func TestRejectRequiresReason(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	expense, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	_, err = svc.Submit(ctx, expense.ID.String(), domain.SubmitExpenseRequest{SubmittedBy: "asha"})
	require.NoError(t, err)

	_, err = svc.Review(ctx, expense.ID.String(), domain.ReviewExpenseRequest{Approve: false, ReviewedBy: "manager"})
	assert.ErrorIs(t, err, domain.ErrInvalidReason)

	reason := "Missing receipts"
	rejected, err := svc.Review(ctx, expense.ID.String(), domain.ReviewExpenseRequest{
		Approve:         false,
		ReviewedBy:      "manager",
		RejectionReason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)
}

func TestSummaryAndProjectStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	second := sampleRequest()
	second.ProjectCostCenter = "CC-2001"
	second.Items = []domain.ExpenseItem{
		{ExpenseCategory: "Software", Currency: "INR", Amount: 3000, ExpenseDate: "2026-05-02"},
	}
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, first.ID.String(), domain.SubmitExpenseRequest{SubmittedBy: "asha"})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalCount)
	assert.Equal(t, 9250.0, summary.TotalAmount)
	assert.Equal(t, 90.0, summary.TotalTax)
	assert.Equal(t, int64(1), summary.DraftCount)
	assert.Equal(t, int64(1), summary.SubmittedCount)
	assert.Equal(t, 6340.0, summary.PendingAmount)
	assert.Equal(t, 0.0, summary.ReimbursedAmount)

	stats, err := svc.ProjectStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "CC-1042", stats[0].ProjectCostCenter)
	assert.Equal(t, 6250.0, stats[0].TotalAmount)
	assert.Equal(t, "CC-2001", stats[1].ProjectCostCenter)

	categories, err := svc.CategoryStats(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Travel", categories[0].ExpenseCategory)
	assert.Equal(t, 5400.0, categories[0].TotalAmount)
	assert.Equal(t, 90.0, categories[0].TotalTax)
	assert.Equal(t, "Software", categories[1].ExpenseCategory)
	assert.Equal(t, "Meals", categories[2].ExpenseCategory)
	assert.Equal(t, int64(1), categories[2].ItemCount)
}

func TestListFiltersByStatusAndProject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	second := sampleRequest()
	second.ProjectCostCenter = "CC-2001"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, first.ID.String(), domain.SubmitExpenseRequest{SubmittedBy: "asha"})
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListExpenseRequest{Status: "submitted"})
	require.NoError(t, err)
	require.Len(t, resp.Expenses, 1)
	assert.Equal(t, first.ID, resp.Expenses[0].ID)

	resp, err = svc.List(ctx, domain.ListExpenseRequest{ProjectCostCenter: "CC-2001"})
	require.NoError(t, err)
	require.Len(t, resp.Expenses, 1)
	assert.Equal(t, "CC-2001", resp.Expenses[0].ProjectCostCenter)

	resp, err = svc.List(ctx, domain.ListExpenseRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Expenses, 2)
}
