package domain

import (
	"context"
	"errors"

	"github.com/fessit/financesuite/internal/taxengine"
	"github.com/fessit/financesuite/pkg/db/pagination"
)

// UpsertInvoiceRequest carries the full invoice document, the shape both the
// creation and edit forms submit. Derived fields (per-item amounts, totals)
// are recomputed server-side and whatever the client sent is discarded.
type UpsertInvoiceRequest struct {
	Invoice
}

type ListInvoiceRequest struct {
	PageToken   string
	PageSize    int32
	InvoiceType string
	Status      string
	Search      string
}

type ListInvoiceResponse struct {
	pagination.PageInfo
	Invoices []Invoice `json:"invoices"`
}

// TaxSummary is the grouped per-rate view of a stored invoice, re-derived
// from the line items so it always agrees with the stored totals.
type TaxSummary struct {
	Totals  taxengine.Totals       `json:"totals"`
	Grouped taxengine.GroupedTaxes `json:"grouped"`
}

type Service interface {
	Create(context.Context, UpsertInvoiceRequest) (Invoice, error)
	List(context.Context, ListInvoiceRequest) (ListInvoiceResponse, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	Update(ctx context.Context, id string, req UpsertInvoiceRequest) (Invoice, error)
	Delete(ctx context.Context, id string) error
	TaxSummary(ctx context.Context, id string) (TaxSummary, error)
}

var (
	ErrInvalidType   = errors.New("invalid_invoice_type")
	ErrInvalidNumber = errors.New("invalid_invoice_number")
	ErrInvalidItems  = errors.New("invalid_items")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
