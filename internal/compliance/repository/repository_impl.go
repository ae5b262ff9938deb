package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/compliance/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertGSTReturn(ctx context.Context, db *gorm.DB, ret *domain.GSTReturn) error {
	return db.WithContext(ctx).Create(ret).Error
}

func (r *repo) FindGSTReturnByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.GSTReturn, error) {
	var ret domain.GSTReturn
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&ret).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &ret, nil
}

func (r *repo) ListGSTReturns(ctx context.Context, db *gorm.DB, filter domain.ListGSTReturnFilter) ([]*domain.GSTReturn, error) {
	var returns []*domain.GSTReturn
	stmt := db.WithContext(ctx).Model(&domain.GSTReturn{})
	if filter.ReturnType != "" {
		stmt = stmt.Where("return_type = ?", filter.ReturnType)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Period != "" {
		stmt = stmt.Where("period = ?", filter.Period)
	}
	err := stmt.
		Order("due_date asc, id asc").
		Find(&returns).Error
	if err != nil {
		return nil, err
	}
	return returns, nil
}

func (r *repo) UpdateGSTReturn(ctx context.Context, db *gorm.DB, ret *domain.GSTReturn) error {
	return db.WithContext(ctx).Save(ret).Error
}

func (r *repo) SummarizeGST(ctx context.Context, db *gorm.DB, asOf string) (*domain.GSTSummary, error) {
	var summary domain.GSTSummary
	err := db.WithContext(ctx).Model(&domain.GSTReturn{}).
		Select(`
			COALESCE(SUM(CASE WHEN status = 'pending' AND due_date >= ? THEN 1 ELSE 0 END), 0) AS pending_count,
			COALESCE(SUM(CASE WHEN status = 'filed' THEN 1 ELSE 0 END), 0) AS filed_count,
			COALESCE(SUM(CASE WHEN status = 'pending' AND due_date < ? THEN 1 ELSE 0 END), 0) AS overdue_count,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN tax_amount ELSE 0 END), 0) AS pending_amount,
			COALESCE(SUM(CASE WHEN status = 'filed' THEN tax_amount ELSE 0 END), 0) AS filed_amount
		`, asOf, asOf).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *repo) InsertTDSRecord(ctx context.Context, db *gorm.DB, rec *domain.TDSRecord) error {
	return db.WithContext(ctx).Create(rec).Error
}

func (r *repo) FindTDSRecordByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.TDSRecord, error) {
	var rec domain.TDSRecord
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repo) ListTDSRecords(ctx context.Context, db *gorm.DB, filter domain.ListTDSRecordFilter) ([]*domain.TDSRecord, error) {
	var records []*domain.TDSRecord
	stmt := db.WithContext(ctx).Model(&domain.TDSRecord{})
	if filter.Section != "" {
		stmt = stmt.Where("section = ?", filter.Section)
	}
	if filter.Deposited != nil {
		stmt = stmt.Where("deposited = ?", *filter.Deposited)
	}
	err := stmt.
		Order("deduction_date desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) UpdateTDSRecord(ctx context.Context, db *gorm.DB, rec *domain.TDSRecord) error {
	return db.WithContext(ctx).Save(rec).Error
}

func (r *repo) SummarizeTDS(ctx context.Context, db *gorm.DB) (*domain.TDSSummary, error) {
	var summary domain.TDSSummary
	err := db.WithContext(ctx).Model(&domain.TDSRecord{}).
		Select(`
			COUNT(*) AS record_count,
			COALESCE(SUM(tds_amount), 0) AS total_deducted,
			COALESCE(SUM(CASE WHEN deposited THEN tds_amount ELSE 0 END), 0) AS deposited_amount,
			COALESCE(SUM(CASE WHEN NOT deposited THEN tds_amount ELSE 0 END), 0) AS pending_deposit
		`).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
