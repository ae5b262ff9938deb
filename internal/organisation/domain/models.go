// Package domain contains persistence models for the organisation profile
// shown on the settings screen.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/fessit/financesuite/internal/customer/domain"
	"gorm.io/datatypes"
)

// Address reuses the customer address shape; both records carry the same
// labelled address lines on the wire.
type Address = customerdomain.Address

type Organisation struct {
	ID               snowflake.ID                 `gorm:"primaryKey" json:"id"`
	OrganisationName string                       `gorm:"not null" json:"organizationName"`
	CompanyName      string                       `gorm:"not null" json:"companyName"`
	GSTIN            string                       `gorm:"column:gstin;not null" json:"gstIN"`
	Addresses        datatypes.JSONSlice[Address] `gorm:"not null" json:"addresses"`
	Country          string                       `gorm:"not null" json:"country"`
	CountryCode      string                       `gorm:"column:country_code" json:"countryCode"`
	Phone            string                       `json:"phone"`
	Email            string                       `json:"email"`
	CreatedAt        time.Time                    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt        time.Time                    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName sets the database table name.
func (Organisation) TableName() string { return "organisations" }
