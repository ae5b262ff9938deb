// Package seed bootstraps reference rows so a fresh install is usable
// without manual setup.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	compliancedomain "github.com/fessit/financesuite/internal/compliance/domain"
	organisationdomain "github.com/fessit/financesuite/internal/organisation/domain"
	"gorm.io/gorm"
)

const (
	defaultOrgName    = "My Company"
	defaultOrgCountry = "India"
	defaultOrgCode    = "IN"
	defaultOrgEmail   = "billing@example.com"
)

// EnsureDefaultOrganisation creates the settings profile the console edits
// when none exists yet.
func EnsureDefaultOrganisation(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&organisationdomain.Organisation{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		org := organisationdomain.Organisation{
			ID:               node.Generate(),
			OrganisationName: defaultOrgName,
			CompanyName:      defaultOrgName,
			Country:          defaultOrgCountry,
			CountryCode:      defaultOrgCode,
			Email:            defaultOrgEmail,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		return tx.Create(&org).Error
	})
}

// EnsureComplianceDefaults seeds the current period's GST filing obligations
// so the compliance screen starts populated. Existing rows are left alone.
func EnsureComplianceDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&compliancedomain.GSTReturn{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		period := now.Format("2006-01")
		nextMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

		returns := []compliancedomain.GSTReturn{
			{
				ID:         node.Generate(),
				ReturnType: compliancedomain.GSTReturnGSTR1,
				Period:     period,
				DueDate:    nextMonth.AddDate(0, 0, 10).Format("2006-01-02"),
				Status:     compliancedomain.GSTReturnStatusPending,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
			{
				ID:         node.Generate(),
				ReturnType: compliancedomain.GSTReturnGSTR3B,
				Period:     period,
				DueDate:    nextMonth.AddDate(0, 0, 19).Format("2006-01-02"),
				Status:     compliancedomain.GSTReturnStatusPending,
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		}
		return tx.Create(&returns).Error
	})
}
