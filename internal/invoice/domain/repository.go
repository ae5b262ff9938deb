package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListInvoiceFilter struct {
	InvoiceType string
	Status      string
	Search      string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, filter ListInvoiceFilter, page pagination.Pagination) ([]*Invoice, error)
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
