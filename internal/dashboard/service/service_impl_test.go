package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	compliancedomain "github.com/fessit/financesuite/internal/compliance/domain"
	"github.com/fessit/financesuite/internal/dashboard/domain"
	expensedomain "github.com/fessit/financesuite/internal/expense/domain"
	invoicedomain "github.com/fessit/financesuite/internal/invoice/domain"
	"github.com/fessit/financesuite/internal/taxengine"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&invoicedomain.Invoice{},
		&compliancedomain.TDSRecord{},
		&expensedomain.Expense{},
	)
	require.NoError(t, err)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{DB: db, Log: zap.NewNop()}), db, node
}

func seedInvoice(t *testing.T, db *gorm.DB, node *snowflake.Node, status invoicedomain.InvoiceStatus, total, cgst, sgst, igst string, createdAt time.Time) invoicedomain.Invoice {
	t.Helper()
	invoice := invoicedomain.Invoice{
		ID:            node.Generate(),
		InvoiceType:   taxengine.Domestic,
		InvoiceNumber: "INV-" + node.Generate().String(),
		Status:        status,
		Total:         total,
		TotalCGST:     cgst,
		TotalSGST:     sgst,
		TotalIGST:     igst,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	require.NoError(t, db.Create(&invoice).Error)
	return invoice
}

func TestStatsRollsUpInvoices(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	seedInvoice(t, db, node, invoicedomain.InvoiceStatusPaid, "157176.00", "11988.00", "11988.00", "0.00", base)
	seedInvoice(t, db, node, invoicedomain.InvoiceStatusSent, "59000.00", "4500.00", "4500.00", "0.00", base.Add(time.Hour))
	seedInvoice(t, db, node, invoicedomain.InvoiceStatusOverdue, "11800.00", "0.00", "0.00", "1800.00", base.Add(2*time.Hour))
	seedInvoice(t, db, node, invoicedomain.InvoiceStatusDraft, "999.00", "0.00", "0.00", "0.00", base.Add(3*time.Hour))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, "157176.00", stats.TotalRevenue)
	assert.Equal(t, int64(2), stats.PendingInvoiceCount)
	assert.Equal(t, "70800.00", stats.OutstandingAmount)
	assert.Equal(t, "10800.00", stats.GSTPayable)
	assert.Len(t, stats.RecentInvoices, 4)
	// Newest first.
	assert.Equal(t, invoicedomain.InvoiceStatusDraft, stats.RecentInvoices[0].Status)
}

func TestStatsIncludesTDSAndExpenses(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&compliancedomain.TDSRecord{
		ID:            node.Generate(),
		DeducteeName:  "Acme Consulting",
		PAN:           "ABCDE1234F",
		Section:       compliancedomain.TDSSection194J,
		PaymentAmount: 100000,
		TDSAmount:     10000,
		DeductionDate: "2026-04-30",
	}).Error)
	require.NoError(t, db.Create(&compliancedomain.TDSRecord{
		ID:            node.Generate(),
		DeducteeName:  "BuildWell Contractors",
		PAN:           "FGHIJ5678K",
		Section:       compliancedomain.TDSSection194C,
		PaymentAmount: 50000,
		TDSAmount:     1000,
		DeductionDate: "2026-05-15",
		Deposited:     true,
	}).Error)

	require.NoError(t, db.Create(&expensedomain.Expense{
		ID:                node.Generate(),
		ExpenseTitle:      "Client visit",
		ProjectCostCenter: "CC-1042",
		TotalAmount:       6250,
		TotalTax:          90,
		Status:            expensedomain.ExpenseStatusSubmitted,
	}).Error)
	require.NoError(t, db.Create(&expensedomain.Expense{
		ID:                node.Generate(),
		ExpenseTitle:      "Stationery",
		ProjectCostCenter: "CC-1042",
		TotalAmount:       500,
		Status:            expensedomain.ExpenseStatusDraft,
	}).Error)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, "10000.00", stats.TDSDeducted)
	assert.Equal(t, "6340.00", stats.ExpensePending)
	assert.Equal(t, "0.00", stats.TotalRevenue)
	assert.Empty(t, stats.RecentInvoices)
}

func TestStatsLimitsRecentInvoices(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		seedInvoice(t, db, node, invoicedomain.InvoiceStatusPaid, "100.00", "0.00", "0.00", "0.00", base.Add(time.Duration(i)*time.Hour))
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.RecentInvoices, 5)
	assert.Equal(t, "700.00", stats.TotalRevenue)
}
