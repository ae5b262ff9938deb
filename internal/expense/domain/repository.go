package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// ListExpenseFilter narrows the expense listing. Date bounds apply to the
// report creation date and are inclusive.
type ListExpenseFilter struct {
	Status            string
	ProjectCostCenter string
	FromDate          string
	ToDate            string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, expense *Expense) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Expense, error)
	List(ctx context.Context, db *gorm.DB, filter ListExpenseFilter) ([]*Expense, error)
	Update(ctx context.Context, db *gorm.DB, expense *Expense) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	Summarize(ctx context.Context, db *gorm.DB) (*ExpenseSummary, error)
	ProjectStats(ctx context.Context, db *gorm.DB) ([]ProjectExpenseStat, error)
}
