package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Address is one labelled address line of a customer record.
type Address struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Customer struct {
	ID           snowflake.ID                   `gorm:"primaryKey" json:"id"`
	CustomerName string                         `gorm:"not null" json:"customerName"`
	CompanyName  string                         `gorm:"not null" json:"companyName"`
	GSTIN        string                         `gorm:"column:gstin;not null" json:"gstIN"`
	Addresses    datatypes.JSONSlice[Address]   `gorm:"not null" json:"addresses"`
	Country      string                         `gorm:"not null" json:"country"`
	CountryCode  string                         `gorm:"column:country_code" json:"countryCode"`
	Phone        string                         `json:"phone"`
	Email        string                         `json:"email"`
	IsActive     bool                           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time                      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt    time.Time                      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
