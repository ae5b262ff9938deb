package report

import (
	"context"
	"io"
	"testing"

	"github.com/fessit/financesuite/internal/invoice/domain"
	"github.com/fessit/financesuite/internal/taxengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func sampleInvoice(invoiceType taxengine.InvoiceType) domain.Invoice {
	items := []taxengine.LineItem{
		{
			Description: "Consulting services",
			Hours:       "10",
			Rate:        "5000",
			CGST:        taxengine.CGST{CGSTPercent: "9"},
			SGST:        taxengine.SGST{SGSTPercent: "9"},
			IGST:        taxengine.IGST{IGSTPercent: "18"},
		},
	}
	return domain.Invoice{
		InvoiceType:      invoiceType,
		CompanyName:      "FessiT Solutions Private Limited",
		GSTIN:            "29ABCDE1234F1Z5",
		InvoiceNumber:    "INV-2026-007",
		InvoiceDate:      "2026-04-01",
		InvoiceDueDate:   "2026-04-30",
		BillCustomerName: "Globex LLC",
		Items:            datatypes.NewJSONSlice(items),
	}
}

func TestInvoicePDFDomestic(t *testing.T) {
	gen := New(zap.NewNop())

	reader, err := gen.InvoicePDF(context.Background(), sampleInvoice(taxengine.Domestic), nil)
	require.NoError(t, err)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestInvoicePDFInternational(t *testing.T) {
	gen := New(zap.NewNop())

	invoice := sampleInvoice(taxengine.International)
	invoice.LUTNo = "LUT-AD290420001234"

	reader, err := gen.InvoicePDF(context.Background(), invoice, nil)
	require.NoError(t, err)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestTaxRowsOrderAndShape(t *testing.T) {
	grouped := taxengine.GroupedTaxes{
		CGST: map[string]string{"9": "900.00", "2.5": "250.00"},
		SGST: map[string]string{"9": "900.00"},
		IGST: map[string]string{"18": "1800.00"},
	}

	rows := taxRows(taxengine.Domestic, grouped)
	require.Len(t, rows, 3)
	assert.Equal(t, "CGST @ 2.5%", rows[0].label)
	assert.Equal(t, "CGST @ 9%", rows[1].label)
	assert.Equal(t, "SGST @ 9%", rows[2].label)

	rows = taxRows(taxengine.International, grouped)
	require.Len(t, rows, 1)
	assert.Equal(t, "IGST @ 18%", rows[0].label)
	assert.Equal(t, "1800.00", rows[0].amount)
}
