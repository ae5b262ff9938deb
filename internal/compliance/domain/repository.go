package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListGSTReturnFilter struct {
	ReturnType string
	Status     string
	Period     string
}

type ListTDSRecordFilter struct {
	Section   string
	Deposited *bool
}

type Repository interface {
	InsertGSTReturn(ctx context.Context, db *gorm.DB, ret *GSTReturn) error
	FindGSTReturnByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*GSTReturn, error)
	ListGSTReturns(ctx context.Context, db *gorm.DB, filter ListGSTReturnFilter) ([]*GSTReturn, error)
	UpdateGSTReturn(ctx context.Context, db *gorm.DB, ret *GSTReturn) error
	SummarizeGST(ctx context.Context, db *gorm.DB, asOf string) (*GSTSummary, error)

	InsertTDSRecord(ctx context.Context, db *gorm.DB, rec *TDSRecord) error
	FindTDSRecordByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*TDSRecord, error)
	ListTDSRecords(ctx context.Context, db *gorm.DB, filter ListTDSRecordFilter) ([]*TDSRecord, error)
	UpdateTDSRecord(ctx context.Context, db *gorm.DB, rec *TDSRecord) error
	SummarizeTDS(ctx context.Context, db *gorm.DB) (*TDSSummary, error)
}
