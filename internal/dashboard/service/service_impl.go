package service

import (
	"context"
	"fmt"

	compliancedomain "github.com/fessit/financesuite/internal/compliance/domain"
	"github.com/fessit/financesuite/internal/dashboard/domain"
	expensedomain "github.com/fessit/financesuite/internal/expense/domain"
	invoicedomain "github.com/fessit/financesuite/internal/invoice/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentInvoiceLimit = 5

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("dashboard.service"),
	}
}

// Stats scans the invoice documents and rolls them up in memory. Invoice
// money fields are stored as formatted strings, so the rollup parses them
// with decimal rather than summing in SQL.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	var invoices []invoicedomain.Invoice
	err := s.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&invoices).Error
	if err != nil {
		return domain.Stats{}, err
	}

	revenue := decimal.Zero
	outstanding := decimal.Zero
	gstPayable := decimal.Zero
	var pendingCount int64

	for _, invoice := range invoices {
		total := parseAmount(invoice.Total)
		switch invoice.Status {
		case invoicedomain.InvoiceStatusPaid:
			revenue = revenue.Add(total)
		case invoicedomain.InvoiceStatusSent, invoicedomain.InvoiceStatusOverdue:
			pendingCount++
			outstanding = outstanding.Add(total)
			gstPayable = gstPayable.
				Add(parseAmount(invoice.TotalCGST)).
				Add(parseAmount(invoice.TotalSGST)).
				Add(parseAmount(invoice.TotalIGST))
		}
	}

	var tdsPending float64
	err = s.db.WithContext(ctx).Model(&compliancedomain.TDSRecord{}).
		Select("COALESCE(SUM(CASE WHEN NOT deposited THEN tds_amount ELSE 0 END), 0)").
		Scan(&tdsPending).Error
	if err != nil {
		return domain.Stats{}, err
	}

	var expensePending float64
	err = s.db.WithContext(ctx).Model(&expensedomain.Expense{}).
		Select("COALESCE(SUM(CASE WHEN status IN ('SUBMITTED', 'APPROVED') THEN total_amount + total_tax ELSE 0 END), 0)").
		Scan(&expensePending).Error
	if err != nil {
		return domain.Stats{}, err
	}

	recent := invoices
	if len(recent) > recentInvoiceLimit {
		recent = recent[:recentInvoiceLimit]
	}

	return domain.Stats{
		TotalRevenue:        revenue.StringFixed(2),
		PendingInvoiceCount: pendingCount,
		OutstandingAmount:   outstanding.StringFixed(2),
		GSTPayable:          gstPayable.StringFixed(2),
		TDSDeducted:         fmt.Sprintf("%.2f", tdsPending),
		ExpensePending:      fmt.Sprintf("%.2f", expensePending),
		RecentInvoices:      recent,
	}, nil
}

func parseAmount(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
