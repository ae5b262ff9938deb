// Package domain defines the dashboard read model.
package domain

import (
	"context"

	invoicedomain "github.com/fessit/financesuite/internal/invoice/domain"
)

// Stats backs the console landing page. Money figures are formatted with two
// decimal places, matching the invoice document fields they roll up.
type Stats struct {
	TotalRevenue        string                  `json:"totalRevenue"`
	PendingInvoiceCount int64                   `json:"pendingInvoiceCount"`
	OutstandingAmount   string                  `json:"outstandingAmount"`
	GSTPayable          string                  `json:"gstPayable"`
	TDSDeducted         string                  `json:"tdsDeducted"`
	ExpensePending      string                  `json:"expensePending"`
	RecentInvoices      []invoicedomain.Invoice `json:"recentInvoices"`
}

type Service interface {
	Stats(ctx context.Context) (Stats, error)
}
