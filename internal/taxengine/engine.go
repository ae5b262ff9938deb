// Package taxengine computes invoice line-item taxes and totals.
//
// The engine is pure: it performs no I/O, never fails, and always produces
// the same output for the same input. Numeric fields arrive as strings from
// the invoice document schema; blank or unparseable values contribute zero.
// All amounts are rounded half-up to 2 decimal places at the item level, so
// every aggregate is a sum of already-rounded parts.
package taxengine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InvoiceType selects which tax family applies to an invoice. It is fixed
// for the life of the invoice's line items.
type InvoiceType string

const (
	Domestic      InvoiceType = "domestic"
	International InvoiceType = "international"
)

// CGST is the central GST block of a line item.
type CGST struct {
	CGSTPercent string `json:"cgstPercent"`
	CGSTAmount  string `json:"cgstAmount"`
}

// SGST is the state GST block of a line item.
type SGST struct {
	SGSTPercent string `json:"sgstPercent"`
	SGSTAmount  string `json:"sgstAmount"`
}

// IGST is the integrated GST block of a line item, used on international
// invoices in place of CGST+SGST.
type IGST struct {
	IGSTPercent string `json:"igstPercent"`
	IGSTAmount  string `json:"igstAmount"`
}

// LineItem is one billable row of an invoice.
type LineItem struct {
	Description string `json:"description"`
	Hours       string `json:"hours"`
	Rate        string `json:"rate"`
	CGST        CGST   `json:"cgst"`
	SGST        SGST   `json:"sgst"`
	IGST        IGST   `json:"igst"`
	ItemTotal   string `json:"itemTotal"`
}

// Totals are the invoice-level rollups. The unused tax family is "0.00".
type Totals struct {
	SubTotal  string `json:"subTotal"`
	TotalCGST string `json:"totalcgst"`
	TotalSGST string `json:"totalsgst"`
	TotalIGST string `json:"totaligst"`
	Total     string `json:"total"`
}

// GroupedTaxes aggregates tax amounts by distinct percentage rate across all
// items. Keys are canonical percent strings ("9" and "9.0" collide), values
// are formatted amounts. Zero-percent entries are excluded; a zero percent
// always yields a zero amount, so they carry no information.
type GroupedTaxes struct {
	CGST map[string]string `json:"cgst"`
	SGST map[string]string `json:"sgst"`
	IGST map[string]string `json:"igst"`
}

// RecomputeItem derives the tax amounts and item total of a single line item
// from its hours, rate and stored percent values. Amounts are always derived
// from the current base amount, regardless of which field changed last.
func RecomputeItem(item LineItem, invoiceType InvoiceType) LineItem {
	base := baseAmount(item)

	switch invoiceType {
	case International:
		igst := round2(base.Mul(parseDecimal(item.IGST.IGSTPercent)).Div(hundred))
		item.IGST.IGSTAmount = igst.StringFixed(2)
		item.ItemTotal = round2(base.Add(igst)).StringFixed(2)
	default:
		cgst := round2(base.Mul(parseDecimal(item.CGST.CGSTPercent)).Div(hundred))
		sgst := round2(base.Mul(parseDecimal(item.SGST.SGSTPercent)).Div(hundred))
		item.CGST.CGSTAmount = cgst.StringFixed(2)
		item.SGST.SGSTAmount = sgst.StringFixed(2)
		item.ItemTotal = round2(base.Add(cgst).Add(sgst)).StringFixed(2)
	}

	return item
}

// GroupByRate recomputes each item's tax from its stored percent values and
// accumulates the rounded amounts by percent. Item totals are never consulted,
// so rounding does not compound.
func GroupByRate(items []LineItem, invoiceType InvoiceType) GroupedTaxes {
	grouped := newAccumulator()
	for _, item := range items {
		grouped.add(item, invoiceType)
	}
	return grouped.display()
}

// ComputeTotals recomputes every line item, the per-rate groupings and the
// invoice rollups. It is a total recomputation; callers invoke it after every
// add, edit or removal of an item.
func ComputeTotals(items []LineItem, invoiceType InvoiceType) ([]LineItem, Totals, GroupedTaxes) {
	out := make([]LineItem, len(items))
	subTotal := decimal.Zero
	grouped := newAccumulator()

	for i, item := range items {
		out[i] = RecomputeItem(item, invoiceType)
		subTotal = subTotal.Add(baseAmount(item))
		grouped.add(item, invoiceType)
	}

	subTotal = round2(subTotal)
	totalCGST := grouped.sum(grouped.cgst)
	totalSGST := grouped.sum(grouped.sgst)
	totalIGST := grouped.sum(grouped.igst)
	total := round2(subTotal.Add(totalCGST).Add(totalSGST).Add(totalIGST))

	totals := Totals{
		SubTotal:  subTotal.StringFixed(2),
		TotalCGST: totalCGST.StringFixed(2),
		TotalSGST: totalSGST.StringFixed(2),
		TotalIGST: totalIGST.StringFixed(2),
		Total:     total.StringFixed(2),
	}

	return out, totals, grouped.display()
}

var hundred = decimal.NewFromInt(100)

// parseDecimal reads a lenient decimal. Blank and malformed input degrade to
// zero so a half-typed field never poisons the totals.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// baseAmount is hours x rate. Blank hours count as zero, same as rate, so the
// per-item and aggregated paths agree.
func baseAmount(item LineItem) decimal.Decimal {
	return parseDecimal(item.Hours).Mul(parseDecimal(item.Rate))
}

// round2 rounds half-up to 2 decimal places. Inputs are non-negative, so
// shopspring's round-half-away-from-zero is exactly round-half-up here.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// canonicalPercent normalizes a percent for use as a grouping key, so "9",
// "9.0" and "9.0000" land in the same bucket.
func canonicalPercent(pct decimal.Decimal) string {
	s := pct.StringFixed(4)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

type accumulator struct {
	cgst map[string]decimal.Decimal
	sgst map[string]decimal.Decimal
	igst map[string]decimal.Decimal
}

func newAccumulator() accumulator {
	return accumulator{
		cgst: make(map[string]decimal.Decimal),
		sgst: make(map[string]decimal.Decimal),
		igst: make(map[string]decimal.Decimal),
	}
}

func (a accumulator) add(item LineItem, invoiceType InvoiceType) {
	base := baseAmount(item)

	switch invoiceType {
	case International:
		pct := parseDecimal(item.IGST.IGSTPercent)
		accumulate(a.igst, pct, base)
	default:
		accumulate(a.cgst, parseDecimal(item.CGST.CGSTPercent), base)
		accumulate(a.sgst, parseDecimal(item.SGST.SGSTPercent), base)
	}
}

func accumulate(bucket map[string]decimal.Decimal, pct, base decimal.Decimal) {
	amount := round2(base.Mul(pct).Div(hundred))
	key := canonicalPercent(pct)
	bucket[key] = bucket[key].Add(amount)
}

func (a accumulator) sum(bucket map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range bucket {
		total = total.Add(amount)
	}
	return round2(total)
}

// display drops zero-percent keys; percent 0 implies amount 0, so the grouped
// summary lines only carry rates that actually taxed something.
func (a accumulator) display() GroupedTaxes {
	return GroupedTaxes{
		CGST: formatBucket(a.cgst),
		SGST: formatBucket(a.sgst),
		IGST: formatBucket(a.igst),
	}
}

func formatBucket(bucket map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(bucket))
	for key, amount := range bucket {
		if key == "0" || key == "" {
			continue
		}
		out[key] = amount.StringFixed(2)
	}
	return out
}
