// Package report renders printable invoice PDFs.
package report

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/fessit/financesuite/internal/invoice/domain"
	organisationdomain "github.com/fessit/financesuite/internal/organisation/domain"
	"github.com/fessit/financesuite/internal/taxengine"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Generator interface {
	InvoicePDF(ctx context.Context, invoice domain.Invoice, org *organisationdomain.Organisation) (io.Reader, error)
}

type generator struct {
	log *zap.Logger
}

func New(log *zap.Logger) Generator {
	return &generator{log: log.Named("report.generator")}
}

// InvoicePDF lays the stored invoice document out as a printable page. The
// per-rate tax rows are re-derived from the line items through the tax
// engine, so the rendered figures always match the stored totals.
func (g *generator) InvoicePDF(ctx context.Context, invoice domain.Invoice, org *organisationdomain.Organisation) (io.Reader, error) {
	items, totals, grouped := taxengine.ComputeTotals(invoice.Items, invoice.InvoiceType)

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	title := "Tax Invoice"
	if invoice.InvoiceType == taxengine.International {
		title = "Export Invoice"
	}
	m.AddRow(12,
		text.NewCol(12, title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	companyName := invoice.CompanyName
	companyAddress := invoice.CompanyAddress
	companyGSTIN := invoice.GSTIN
	if org != nil {
		if companyName == "" {
			companyName = org.OrganisationName
		}
		if companyGSTIN == "" {
			companyGSTIN = org.GSTIN
		}
	}

	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+invoice.InvoiceNumber, props.Text{Top: 0}),
			text.New("Invoice date: "+invoice.InvoiceDate, props.Text{Top: 4}),
			text.New("Due date: "+invoice.InvoiceDueDate, props.Text{Top: 8}),
		),
		col.New(6).Add(
			text.New(companyName, props.Text{Style: fontstyle.Bold}),
			text.New(companyAddress, props.Text{Top: 5}),
			text.New("GSTIN: "+companyGSTIN, props.Text{Top: 13}),
		),
	)

	m.AddRow(35,
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(invoice.BillCustomerName, props.Text{Top: 5}),
			text.New(invoice.BillCustomerAddress, props.Text{Top: 9}),
			text.New("GSTIN: "+invoice.BillCustomerGSTIN, props.Text{Top: 21}),
		),
		col.New(6).Add(
			text.New("Ship to", props.Text{Style: fontstyle.Bold}),
			text.New(invoice.ShipCustomerName, props.Text{Top: 5}),
			text.New(invoice.ShipCustomerAddress, props.Text{Top: 9}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Hours", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range items {
		m.AddRow(12,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, item.Hours, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Rate, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.ItemTotal, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, totals.SubTotal, props.Text{Size: 9, Align: align.Right}),
	)

	for _, row := range taxRows(invoice.InvoiceType, grouped) {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, row.label, props.Text{Size: 9}),
			text.NewCol(2, row.amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, totals.Total, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	if invoice.LUTNo != "" {
		m.AddRow(10,
			text.NewCol(12, "Supply under LUT no. "+invoice.LUTNo+" without payment of IGST", props.Text{Size: 8}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	g.log.Debug("invoice pdf generated",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Int("items", len(items)),
	)

	return bytes.NewReader(doc.GetBytes()), nil
}

type taxRow struct {
	label  string
	amount string
}

// taxRows flattens the grouped per-rate buckets into labelled summary rows,
// ordered by ascending rate within each tax head.
func taxRows(invoiceType taxengine.InvoiceType, grouped taxengine.GroupedTaxes) []taxRow {
	var rows []taxRow
	if invoiceType == taxengine.International {
		rows = append(rows, bucketRows("IGST", grouped.IGST)...)
		return rows
	}
	rows = append(rows, bucketRows("CGST", grouped.CGST)...)
	rows = append(rows, bucketRows("SGST", grouped.SGST)...)
	return rows
}

func bucketRows(head string, bucket map[string]string) []taxRow {
	percents := make([]string, 0, len(bucket))
	for percent := range bucket {
		percents = append(percents, percent)
	}
	sort.Slice(percents, func(i, j int) bool {
		a, errA := decimal.NewFromString(percents[i])
		b, errB := decimal.NewFromString(percents[j])
		if errA != nil || errB != nil {
			return percents[i] < percents[j]
		}
		return a.LessThan(b)
	})

	rows := make([]taxRow, 0, len(percents))
	for _, percent := range percents {
		label := head + " @ " + strings.TrimSpace(percent) + "%"
		rows = append(rows, taxRow{label: label, amount: bucket[percent]})
	}
	return rows
}
