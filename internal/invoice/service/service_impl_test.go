package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/invoice/domain"
	"github.com/fessit/financesuite/internal/invoice/repository"
	"github.com/fessit/financesuite/internal/taxengine"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.Invoice{})
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

func sampleRequest() domain.UpsertInvoiceRequest {
	return domain.UpsertInvoiceRequest{
		Invoice: domain.Invoice{
			InvoiceType:      taxengine.Domestic,
			CompanyName:      "FessiT Solutions Private Limited",
			InvoiceNumber:    "INV-2026-001",
			BillCustomerName: "TEST customer",
			Items: datatypes.NewJSONSlice([]taxengine.LineItem{
				{
					Description: "item1",
					Hours:       "6",
					Rate:        "2000",
					CGST:        taxengine.CGST{CGSTPercent: "9"},
					SGST:        taxengine.SGST{SGSTPercent: "9"},
				},
				{
					Description: "item2",
					Hours:       "6",
					Rate:        "20000",
					CGST:        taxengine.CGST{CGSTPercent: "9"},
					SGST:        taxengine.SGST{SGSTPercent: "9"},
				},
			}),
		},
	}
}

func TestCreate_RecomputesDerivedFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := sampleRequest()
	// Client-sent totals are untrusted and must be overwritten.
	req.SubTotal = "1.00"
	req.Total = "2.00"
	req.Items[0].ItemTotal = "999999.99"

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "132000.00", created.SubTotal)
	assert.Equal(t, "11880.00", created.TotalCGST)
	assert.Equal(t, "11880.00", created.TotalSGST)
	assert.Equal(t, "0.00", created.TotalIGST)
	assert.Equal(t, "155760.00", created.Total)
	assert.Equal(t, "14160.00", created.Items[0].ItemTotal)
	assert.Equal(t, domain.InvoiceStatusDraft, created.Status)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := sampleRequest()
	req.InvoiceType = "intergalactic"
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	req = sampleRequest()
	req.InvoiceNumber = "  "
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)

	req = sampleRequest()
	req.Items = nil
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidItems)

	req = sampleRequest()
	req.Status = "archived"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdate_KeepsInvoiceTypeAndRecomputes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	update := sampleRequest()
	update.InvoiceType = taxengine.International // must be ignored
	update.Items = datatypes.NewJSONSlice([]taxengine.LineItem{
		{
			Description: "item1",
			Hours:       "6",
			Rate:        "2000",
			CGST:        taxengine.CGST{CGSTPercent: "9"},
			SGST:        taxengine.SGST{SGSTPercent: "9"},
		},
	})

	updated, err := svc.Update(ctx, created.ID.String(), update)
	require.NoError(t, err)

	assert.Equal(t, taxengine.Domestic, updated.InvoiceType)
	assert.Equal(t, "12000.00", updated.SubTotal)
	assert.Equal(t, "14160.00", updated.Total)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestTaxSummary_AgreesWithStoredTotals(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	summary, err := svc.TaxSummary(ctx, created.ID.String())
	require.NoError(t, err)

	assert.Equal(t, created.SubTotal, summary.Totals.SubTotal)
	assert.Equal(t, created.TotalCGST, summary.Totals.TotalCGST)
	assert.Equal(t, created.TotalSGST, summary.Totals.TotalSGST)
	assert.Equal(t, created.Total, summary.Totals.Total)
	assert.Equal(t, "11880.00", summary.Grouped.CGST["9"])
}

func TestList_SearchMatchesNumberAndCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	second := sampleRequest()
	second.InvoiceNumber = "INV-2026-002"
	second.BillCustomerName = "Globex LLC"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListInvoiceRequest{Search: "Globex"})
	require.NoError(t, err)
	require.Len(t, resp.Invoices, 1)
	assert.Equal(t, "Globex LLC", resp.Invoices[0].BillCustomerName)

	resp, err = svc.List(ctx, domain.ListInvoiceRequest{Search: "INV-2026"})
	require.NoError(t, err)
	assert.Len(t, resp.Invoices, 2)

	resp, err = svc.List(ctx, domain.ListInvoiceRequest{Search: "no-such-party"})
	require.NoError(t, err)
	assert.Empty(t, resp.Invoices)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	_, err = svc.GetByID(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), "not-a-snowflake")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
