package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/invoice/domain"
	"github.com/fessit/financesuite/internal/taxengine"
	"github.com/fessit/financesuite/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.UpsertInvoiceRequest) (domain.Invoice, error) {
	invoice := req.Invoice
	if err := normalize(&invoice); err != nil {
		return domain.Invoice{}, err
	}

	now := time.Now().UTC()
	invoice.ID = s.genID.Generate()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	recompute(&invoice)

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("invoice_type", string(invoice.InvoiceType)),
		zap.String("total", invoice.Total),
	)

	return invoice, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoiceRequest) (domain.ListInvoiceResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	filter := domain.ListInvoiceFilter{
		InvoiceType: strings.TrimSpace(req.InvoiceType),
		Status:      strings.ToLower(strings.TrimSpace(req.Status)),
		Search:      strings.TrimSpace(req.Search),
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListInvoiceResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(invoice *domain.Invoice) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        invoice.ID.String(),
			CreatedAt: invoice.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	invoices := make([]domain.Invoice, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		invoices = append(invoices, *item)
	}

	resp := domain.ListInvoiceResponse{Invoices: invoices}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Invoice{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Invoice{}, err
	}
	if item == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpsertInvoiceRequest) (domain.Invoice, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Invoice{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Invoice{}, err
	}
	if existing == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}

	invoice := req.Invoice
	// The tax shape is fixed at creation; an edit cannot flip an invoice
	// between domestic and international.
	invoice.InvoiceType = existing.InvoiceType
	if err := normalize(&invoice); err != nil {
		return domain.Invoice{}, err
	}

	invoice.ID = existing.ID
	invoice.CreatedAt = existing.CreatedAt
	invoice.UpdatedAt = time.Now().UTC()
	recompute(&invoice)

	if err := s.repo.Update(ctx, s.db, &invoice); err != nil {
		return domain.Invoice{}, err
	}

	return invoice, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, parsed)
}

func (s *Service) TaxSummary(ctx context.Context, id string) (domain.TaxSummary, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.TaxSummary{}, err
	}

	_, totals, grouped := taxengine.ComputeTotals(invoice.Items, invoice.InvoiceType)
	return domain.TaxSummary{Totals: totals, Grouped: grouped}, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func normalize(invoice *domain.Invoice) error {
	switch invoice.InvoiceType {
	case taxengine.Domestic, taxengine.International:
	default:
		return domain.ErrInvalidType
	}

	invoice.InvoiceNumber = strings.TrimSpace(invoice.InvoiceNumber)
	if invoice.InvoiceNumber == "" {
		return domain.ErrInvalidNumber
	}

	if len(invoice.Items) == 0 {
		return domain.ErrInvalidItems
	}

	status := domain.InvoiceStatus(strings.ToLower(strings.TrimSpace(string(invoice.Status))))
	switch status {
	case "":
		status = domain.InvoiceStatusDraft
	case domain.InvoiceStatusDraft, domain.InvoiceStatusSent, domain.InvoiceStatusPaid, domain.InvoiceStatusOverdue:
	default:
		return domain.ErrInvalidStatus
	}
	invoice.Status = status

	return nil
}

// recompute runs the tax engine over the items and overwrites every derived
// field on the invoice, so the stored document, the forms and the printable
// report all agree.
func recompute(invoice *domain.Invoice) {
	items, totals, _ := taxengine.ComputeTotals(invoice.Items, invoice.InvoiceType)
	invoice.Items = datatypes.NewJSONSlice(items)
	invoice.SubTotal = totals.SubTotal
	invoice.TotalCGST = totals.TotalCGST
	invoice.TotalSGST = totals.TotalSGST
	invoice.TotalIGST = totals.TotalIGST
	invoice.Total = totals.Total
}
