package migration

import (
	compliancedomain "github.com/fessit/financesuite/internal/compliance/domain"
	"github.com/fessit/financesuite/internal/config"
	customerdomain "github.com/fessit/financesuite/internal/customer/domain"
	expensedomain "github.com/fessit/financesuite/internal/expense/domain"
	invoicedomain "github.com/fessit/financesuite/internal/invoice/domain"
	organisationdomain "github.com/fessit/financesuite/internal/organisation/domain"
	"github.com/fessit/financesuite/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql and sqlite installs rely on gorm's schema sync.
			if err := conn.AutoMigrate(
				&customerdomain.Customer{},
				&organisationdomain.Organisation{},
				&invoicedomain.Invoice{},
				&expensedomain.Expense{},
				&compliancedomain.GSTReturn{},
				&compliancedomain.TDSRecord{},
			); err != nil {
				return err
			}
		}

		if err := seed.EnsureDefaultOrganisation(conn); err != nil {
			return err
		}
		return seed.EnsureComplianceDefaults(conn)
	}),
)
