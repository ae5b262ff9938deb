// Package domain contains persistence models for invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/taxengine"
	"gorm.io/datatypes"
)

// InvoiceStatus represents invoice lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is the full invoice document. Numeric totals are kept as formatted
// strings, matching the document schema the console reads and writes; the tax
// engine is the single writer of every derived field.
type Invoice struct {
	ID snowflake.ID `gorm:"primaryKey" json:"id"`

	InvoiceType taxengine.InvoiceType `gorm:"not null" json:"invoice_type"`

	CompanyName    string `json:"company_name"`
	GSTIN          string `gorm:"column:gstin" json:"gstIN"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`

	// LUT and IEC registration numbers, used on international invoices.
	LUTNo string `gorm:"column:lut_no" json:"lut_no"`
	IECNo string `gorm:"column:iec_no" json:"iec_no"`

	InvoiceNumber  string `gorm:"not null;index" json:"invoice_number"`
	InvoiceDate    string `json:"invoice_date"`
	InvoiceDueDate string `json:"invoice_dueDate"`
	InvoiceTerms   string `json:"invoice_terms"`
	PONumber       string `gorm:"column:po_number" json:"po_number"`
	PODate         string `gorm:"column:po_date" json:"po_date"`
	PlaceOfSupply  string `json:"place_of_supply"`

	BillCustomerName    string `gorm:"column:billcustomer_name" json:"billcustomer_name"`
	BillCustomerAddress string `gorm:"column:billcustomer_address" json:"billcustomer_address"`
	BillCustomerGSTIN   string `gorm:"column:billcustomer_gstin" json:"billcustomer_gstin"`

	ShipCustomerName    string `gorm:"column:shipcustomer_name" json:"shipcustomer_name"`
	ShipCustomerAddress string `gorm:"column:shipcustomer_address" json:"shipcustomer_address"`
	ShipCustomerGSTIN   string `gorm:"column:shipcustomer_gstin" json:"shipcustomer_gstin"`

	Subject string `json:"subject"`

	Items datatypes.JSONSlice[taxengine.LineItem] `gorm:"not null" json:"items"`

	SubTotal  string `gorm:"column:sub_total" json:"subTotal"`
	TotalCGST string `gorm:"column:total_cgst" json:"totalcgst"`
	TotalSGST string `gorm:"column:total_sgst" json:"totalsgst"`
	TotalIGST string `gorm:"column:total_igst" json:"totaligst"`
	Total     string `json:"total"`

	Notes  string        `json:"notes"`
	Status InvoiceStatus `gorm:"not null;default:'draft'" json:"status"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
