package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/compliance/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("compliance.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) CreateGSTReturn(ctx context.Context, req domain.CreateGSTReturnRequest) (domain.GSTReturn, error) {
	switch req.ReturnType {
	case domain.GSTReturnGSTR1, domain.GSTReturnGSTR3B:
	default:
		return domain.GSTReturn{}, domain.ErrInvalidReturnType
	}
	period := strings.TrimSpace(req.Period)
	if period == "" {
		return domain.GSTReturn{}, domain.ErrInvalidPeriod
	}
	dueDate := strings.TrimSpace(req.DueDate)
	if dueDate == "" {
		return domain.GSTReturn{}, domain.ErrInvalidDueDate
	}
	if req.TaxAmount < 0 {
		return domain.GSTReturn{}, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	ret := domain.GSTReturn{
		ID:         s.genID.Generate(),
		ReturnType: req.ReturnType,
		Period:     period,
		DueDate:    dueDate,
		Status:     domain.GSTReturnStatusPending,
		TaxAmount:  req.TaxAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.InsertGSTReturn(ctx, s.db, &ret); err != nil {
		return domain.GSTReturn{}, err
	}

	s.log.Info("gst return created",
		zap.String("return_id", ret.ID.String()),
		zap.String("return_type", string(ret.ReturnType)),
		zap.String("period", ret.Period),
	)

	return ret, nil
}

func (s *Service) ListGSTReturns(ctx context.Context, req domain.ListGSTReturnRequest) ([]domain.GSTReturn, error) {
	status := strings.ToLower(strings.TrimSpace(req.Status))
	repoStatus := status
	if status == string(domain.GSTReturnStatusOverdue) {
		// Overdue rows are stored as pending and derived from the due date.
		repoStatus = string(domain.GSTReturnStatusPending)
	}

	items, err := s.repo.ListGSTReturns(ctx, s.db, domain.ListGSTReturnFilter{
		ReturnType: strings.TrimSpace(req.ReturnType),
		Status:     repoStatus,
		Period:     strings.TrimSpace(req.Period),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	returns := make([]domain.GSTReturn, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		ret := *item
		ret.Status = ret.EffectiveStatus(now)
		if status != "" && string(ret.Status) != status {
			continue
		}
		returns = append(returns, ret)
	}
	return returns, nil
}

func (s *Service) FileGSTReturn(ctx context.Context, id string) (domain.GSTReturn, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.GSTReturn{}, err
	}

	ret, err := s.repo.FindGSTReturnByID(ctx, s.db, parsed)
	if err != nil {
		return domain.GSTReturn{}, err
	}
	if ret == nil {
		return domain.GSTReturn{}, domain.ErrNotFound
	}
	if ret.Status == domain.GSTReturnStatusFiled {
		return domain.GSTReturn{}, domain.ErrAlreadyFiled
	}

	now := time.Now().UTC()
	ret.Status = domain.GSTReturnStatusFiled
	ret.FiledAt = &now
	ret.UpdatedAt = now

	if err := s.repo.UpdateGSTReturn(ctx, s.db, ret); err != nil {
		return domain.GSTReturn{}, err
	}
	return *ret, nil
}

func (s *Service) GSTSummary(ctx context.Context) (domain.GSTSummary, error) {
	summary, err := s.repo.SummarizeGST(ctx, s.db, time.Now().UTC().Format("2006-01-02"))
	if err != nil {
		return domain.GSTSummary{}, err
	}
	if summary == nil {
		return domain.GSTSummary{}, nil
	}
	return *summary, nil
}

func (s *Service) CreateTDSRecord(ctx context.Context, req domain.CreateTDSRecordRequest) (domain.TDSRecord, error) {
	deductee := strings.TrimSpace(req.DeducteeName)
	if deductee == "" {
		return domain.TDSRecord{}, domain.ErrInvalidDeductee
	}
	pan := strings.ToUpper(strings.TrimSpace(req.PAN))
	if len(pan) != 10 {
		return domain.TDSRecord{}, domain.ErrInvalidPAN
	}
	switch req.Section {
	case domain.TDSSection194J, domain.TDSSection194C:
	default:
		return domain.TDSRecord{}, domain.ErrInvalidSection
	}
	if req.PaymentAmount < 0 || req.TDSAmount < 0 || req.TDSAmount > req.PaymentAmount {
		return domain.TDSRecord{}, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	rec := domain.TDSRecord{
		ID:            s.genID.Generate(),
		DeducteeName:  deductee,
		PAN:           pan,
		Section:       req.Section,
		PaymentAmount: req.PaymentAmount,
		TDSAmount:     req.TDSAmount,
		DeductionDate: strings.TrimSpace(req.DeductionDate),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.InsertTDSRecord(ctx, s.db, &rec); err != nil {
		return domain.TDSRecord{}, err
	}

	s.log.Info("tds record created",
		zap.String("record_id", rec.ID.String()),
		zap.String("section", string(rec.Section)),
		zap.Float64("tds_amount", rec.TDSAmount),
	)

	return rec, nil
}

func (s *Service) ListTDSRecords(ctx context.Context, req domain.ListTDSRecordRequest) ([]domain.TDSRecord, error) {
	items, err := s.repo.ListTDSRecords(ctx, s.db, domain.ListTDSRecordFilter{
		Section:   strings.TrimSpace(req.Section),
		Deposited: req.Deposited,
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.TDSRecord, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		records = append(records, *item)
	}
	return records, nil
}

func (s *Service) DepositTDS(ctx context.Context, id string) (domain.TDSRecord, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.TDSRecord{}, err
	}

	rec, err := s.repo.FindTDSRecordByID(ctx, s.db, parsed)
	if err != nil {
		return domain.TDSRecord{}, err
	}
	if rec == nil {
		return domain.TDSRecord{}, domain.ErrNotFound
	}
	if rec.Deposited {
		return domain.TDSRecord{}, domain.ErrAlreadyDeposited
	}

	now := time.Now().UTC()
	rec.Deposited = true
	rec.DepositedAt = &now
	rec.UpdatedAt = now

	if err := s.repo.UpdateTDSRecord(ctx, s.db, rec); err != nil {
		return domain.TDSRecord{}, err
	}
	return *rec, nil
}

func (s *Service) TDSSummary(ctx context.Context) (domain.TDSSummary, error) {
	summary, err := s.repo.SummarizeTDS(ctx, s.db)
	if err != nil {
		return domain.TDSSummary{}, err
	}
	if summary == nil {
		return domain.TDSSummary{}, nil
	}
	return *summary, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
