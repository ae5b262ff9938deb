package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/expense/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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
		log:   p.Log.Named("expense.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateExpenseRequest) (domain.Expense, error) {
	title := strings.TrimSpace(req.ExpenseTitle)
	if title == "" {
		return domain.Expense{}, domain.ErrInvalidTitle
	}
	costCenter := strings.TrimSpace(req.ProjectCostCenter)
	if costCenter == "" {
		return domain.Expense{}, domain.ErrInvalidCostCenter
	}
	if err := validateItems(req.Items); err != nil {
		return domain.Expense{}, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ID:                s.genID.Generate(),
		ExpenseTitle:      title,
		ProjectCostCenter: costCenter,
		Items:             datatypes.NewJSONSlice(req.Items),
		Status:            domain.ExpenseStatusDraft,
		SubmittedBy:       req.SubmittedBy,
		Notes:             req.Notes,
		Department:        req.Department,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	expense.CalculateTotals()

	if err := s.repo.Insert(ctx, s.db, &expense); err != nil {
		return domain.Expense{}, err
	}

	s.log.Info("expense created",
		zap.String("expense_id", expense.ID.String()),
		zap.String("project_cost_center", expense.ProjectCostCenter),
		zap.Float64("total_amount", expense.TotalAmount),
	)

	return expense, nil
}

func (s *Service) List(ctx context.Context, req domain.ListExpenseRequest) (domain.ListExpenseResponse, error) {
	filter := domain.ListExpenseFilter{
		Status:            strings.ToUpper(strings.TrimSpace(req.Status)),
		ProjectCostCenter: strings.TrimSpace(req.ProjectCostCenter),
		FromDate:          strings.TrimSpace(req.FromDate),
		ToDate:            strings.TrimSpace(req.ToDate),
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return domain.ListExpenseResponse{}, err
	}

	expenses := make([]domain.Expense, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		expenses = append(expenses, *item)
	}

	return domain.ListExpenseResponse{Expenses: expenses}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Expense, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Expense{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Expense{}, err
	}
	if item == nil {
		return domain.Expense{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateExpenseRequest) (domain.Expense, error) {
	parsed, err := s.parseID(req.ID)
	if err != nil {
		return domain.Expense{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Expense{}, err
	}
	if existing == nil {
		return domain.Expense{}, domain.ErrNotFound
	}
	if !existing.IsEditable() {
		return domain.Expense{}, domain.ErrNotEditable
	}

	if req.ExpenseTitle != nil {
		title := strings.TrimSpace(*req.ExpenseTitle)
		if title == "" {
			return domain.Expense{}, domain.ErrInvalidTitle
		}
		existing.ExpenseTitle = title
	}
	if req.ProjectCostCenter != nil {
		costCenter := strings.TrimSpace(*req.ProjectCostCenter)
		if costCenter == "" {
			return domain.Expense{}, domain.ErrInvalidCostCenter
		}
		existing.ProjectCostCenter = costCenter
	}
	if req.Items != nil {
		if err := validateItems(*req.Items); err != nil {
			return domain.Expense{}, err
		}
		existing.Items = datatypes.NewJSONSlice(*req.Items)
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}
	if req.Department != nil {
		existing.Department = req.Department
	}

	existing.CalculateTotals()
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Expense{}, err
	}
	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if !item.IsEditable() {
		return domain.ErrNotEditable
	}

	return s.repo.Delete(ctx, s.db, parsed)
}

func (s *Service) Submit(ctx context.Context, id string, req domain.SubmitExpenseRequest) (domain.Expense, error) {
	expense, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Expense{}, err
	}
	if !expense.CanSubmit() {
		return domain.Expense{}, domain.ErrNotSubmittable
	}

	now := time.Now().UTC()
	if submitter := strings.TrimSpace(req.SubmittedBy); submitter != "" {
		expense.SubmittedBy = &submitter
	}
	expense.Status = domain.ExpenseStatusSubmitted
	expense.SubmittedAt = &now
	expense.UpdatedAt = now

	if err := s.repo.Update(ctx, s.db, &expense); err != nil {
		return domain.Expense{}, err
	}

	s.log.Info("expense submitted",
		zap.String("expense_id", expense.ID.String()),
		zap.Float64("total_amount", expense.TotalAmount),
	)

	return expense, nil
}

func (s *Service) Review(ctx context.Context, id string, req domain.ReviewExpenseRequest) (domain.Expense, error) {
	expense, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Expense{}, err
	}
	if !expense.CanReview() {
		return domain.Expense{}, domain.ErrNotReviewable
	}

	now := time.Now().UTC()
	reviewer := strings.TrimSpace(req.ReviewedBy)
	if reviewer != "" {
		expense.ApprovedBy = &reviewer
	}
	expense.ReviewedAt = &now
	expense.UpdatedAt = now

	if req.Approve {
		expense.Status = domain.ExpenseStatusApproved
		expense.RejectionReason = nil
	} else {
		if req.RejectionReason == nil || strings.TrimSpace(*req.RejectionReason) == "" {
			return domain.Expense{}, domain.ErrInvalidReason
		}
		expense.Status = domain.ExpenseStatusRejected
		expense.RejectionReason = req.RejectionReason
	}

	if err := s.repo.Update(ctx, s.db, &expense); err != nil {
		return domain.Expense{}, err
	}

	s.log.Info("expense reviewed",
		zap.String("expense_id", expense.ID.String()),
		zap.String("status", string(expense.Status)),
	)

	return expense, nil
}

func (s *Service) Reimburse(ctx context.Context, id string) (domain.Expense, error) {
	expense, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Expense{}, err
	}
	if !expense.CanReimburse() {
		return domain.Expense{}, domain.ErrNotReimbursable
	}

	now := time.Now().UTC()
	expense.Status = domain.ExpenseStatusReimbursed
	expense.ReimbursedAt = &now
	expense.UpdatedAt = now

	if err := s.repo.Update(ctx, s.db, &expense); err != nil {
		return domain.Expense{}, err
	}
	return expense, nil
}

func (s *Service) Summary(ctx context.Context) (domain.ExpenseSummary, error) {
	summary, err := s.repo.Summarize(ctx, s.db)
	if err != nil {
		return domain.ExpenseSummary{}, err
	}
	if summary == nil {
		return domain.ExpenseSummary{}, nil
	}
	return *summary, nil
}

func (s *Service) ProjectStats(ctx context.Context) ([]domain.ProjectExpenseStat, error) {
	return s.repo.ProjectStats(ctx, s.db)
}

func (s *Service) CategoryStats(ctx context.Context) ([]domain.CategoryExpenseStat, error) {
	expenses, err := s.repo.List(ctx, s.db, domain.ListExpenseFilter{})
	if err != nil {
		return nil, err
	}

	byCategory := map[string]*domain.CategoryExpenseStat{}
	for _, expense := range expenses {
		if expense == nil {
			continue
		}
		for _, item := range expense.Items {
			category := strings.TrimSpace(item.ExpenseCategory)
			if category == "" {
				category = "Uncategorized"
			}
			stat, ok := byCategory[category]
			if !ok {
				stat = &domain.CategoryExpenseStat{ExpenseCategory: category}
				byCategory[category] = stat
			}
			stat.ItemCount++
			stat.TotalAmount += item.Amount
			if item.TaxAmount != nil {
				stat.TotalTax += *item.TaxAmount
			}
		}
	}

	stats := make([]domain.CategoryExpenseStat, 0, len(byCategory))
	for _, stat := range byCategory {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalAmount != stats[j].TotalAmount {
			return stats[i].TotalAmount > stats[j].TotalAmount
		}
		return stats[i].ExpenseCategory < stats[j].ExpenseCategory
	})
	return stats, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func validateItems(items []domain.ExpenseItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidItems
	}
	for _, item := range items {
		if item.Amount < 0 {
			return domain.ErrInvalidAmount
		}
		if item.TaxAmount != nil && *item.TaxAmount < 0 {
			return domain.ErrInvalidAmount
		}
	}
	return nil
}
