package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/customer/domain"
	"github.com/fessit/financesuite/internal/reference"
	"github.com/fessit/financesuite/pkg/db/pagination"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	if err := validateCreate(req); err != nil {
		return domain.Customer{}, err
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:           s.genID.Generate(),
		CustomerName: strings.TrimSpace(req.CustomerName),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		GSTIN:        strings.TrimSpace(req.GSTIN),
		Addresses:    datatypes.NewJSONSlice(req.Addresses),
		Country:      strings.TrimSpace(req.Country),
		CountryCode:  strings.TrimSpace(req.CountryCode),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) (domain.ListCustomerResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, strings.TrimSpace(req.Search), pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(customer *domain.Customer) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        customer.ID.String(),
			CreatedAt: customer.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}

	resp := domain.ListCustomerResponse{Customers: customers}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Customer{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	parsed, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	if req.CustomerName != nil {
		if strings.TrimSpace(*req.CustomerName) == "" {
			return domain.Customer{}, domain.ErrInvalidName
		}
		item.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.CompanyName != nil {
		item.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.GSTIN != nil {
		item.GSTIN = strings.TrimSpace(*req.GSTIN)
	}
	if req.Addresses != nil {
		item.Addresses = datatypes.NewJSONSlice(*req.Addresses)
	}
	if req.Country != nil {
		item.Country = strings.TrimSpace(*req.Country)
	}
	if req.CountryCode != nil {
		item.CountryCode = strings.TrimSpace(*req.CountryCode)
	}
	if req.Phone != nil {
		item.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" || !strings.Contains(email, "@") {
			return domain.Customer{}, domain.ErrInvalidEmail
		}
		item.Email = email
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Customer{}, err
	}

	return *item, nil
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

	return s.repo.Delete(ctx, s.db, parsed)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func validateCreate(req domain.CreateCustomerRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return domain.ErrInvalidName
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		return domain.ErrInvalidCompany
	}
	if strings.TrimSpace(req.GSTIN) == "" {
		return domain.ErrInvalidGSTIN
	}
	if len(req.Addresses) == 0 {
		return domain.ErrInvalidAddress
	}
	if strings.TrimSpace(req.Country) == "" {
		return domain.ErrInvalidCountry
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.ErrInvalidEmail
	}
	// Format checks apply only when the country is one we ship rules for.
	if country, ok := reference.CountryByName(strings.TrimSpace(req.Country)); ok {
		if !country.ValidTaxID(strings.TrimSpace(req.GSTIN)) {
			return domain.ErrInvalidGSTIN
		}
		if phone := strings.TrimSpace(req.Phone); phone != "" && !country.ValidPhone(phone) {
			return domain.ErrInvalidPhone
		}
	}
	return nil
}
