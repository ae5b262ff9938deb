package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/expense/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, expense *domain.Expense) error {
	return db.WithContext(ctx).Create(expense).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Expense, error) {
	var expense domain.Expense
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&expense).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListExpenseFilter) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	stmt := db.WithContext(ctx).Model(&domain.Expense{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.ProjectCostCenter != "" {
		stmt = stmt.Where("project_cost_center = ?", filter.ProjectCostCenter)
	}
	if filter.FromDate != "" {
		stmt = stmt.Where("created_at >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		stmt = stmt.Where("created_at <= ?", filter.ToDate)
	}
	err := stmt.
		Order("created_at desc, id desc").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, expense *domain.Expense) error {
	return db.WithContext(ctx).Save(expense).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Expense{}).Error
}

func (r *repo) Summarize(ctx context.Context, db *gorm.DB) (*domain.ExpenseSummary, error) {
	var summary domain.ExpenseSummary
	err := db.WithContext(ctx).Model(&domain.Expense{}).
		Select(`
			COUNT(*) AS total_count,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COALESCE(SUM(total_tax), 0) AS total_tax,
			COALESCE(SUM(CASE WHEN status = 'DRAFT' THEN 1 ELSE 0 END), 0) AS draft_count,
			COALESCE(SUM(CASE WHEN status = 'SUBMITTED' THEN 1 ELSE 0 END), 0) AS submitted_count,
			COALESCE(SUM(CASE WHEN status = 'APPROVED' THEN 1 ELSE 0 END), 0) AS approved_count,
			COALESCE(SUM(CASE WHEN status = 'REJECTED' THEN 1 ELSE 0 END), 0) AS rejected_count,
			COALESCE(SUM(CASE WHEN status = 'REIMBURSED' THEN 1 ELSE 0 END), 0) AS reimbursed_count,
			COALESCE(SUM(CASE WHEN status IN ('SUBMITTED', 'APPROVED') THEN total_amount + total_tax ELSE 0 END), 0) AS pending_amount,
			COALESCE(SUM(CASE WHEN status = 'REIMBURSED' THEN total_amount + total_tax ELSE 0 END), 0) AS reimbursed_amount
		`).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *repo) ProjectStats(ctx context.Context, db *gorm.DB) ([]domain.ProjectExpenseStat, error) {
	var stats []domain.ProjectExpenseStat
	err := db.WithContext(ctx).Model(&domain.Expense{}).
		Select(`
			project_cost_center,
			COUNT(*) AS expense_count,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COALESCE(SUM(total_tax), 0) AS total_tax
		`).
		Group("project_cost_center").
		Order("total_amount desc").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
