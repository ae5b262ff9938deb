package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/organisation/domain"
	"github.com/fessit/financesuite/internal/reference"
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
		log:   p.Log.Named("organisation.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOrganisationRequest) (domain.Organisation, error) {
	if strings.TrimSpace(req.OrganisationName) == "" {
		return domain.Organisation{}, domain.ErrInvalidName
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		return domain.Organisation{}, domain.ErrInvalidCompany
	}
	if strings.TrimSpace(req.GSTIN) == "" {
		return domain.Organisation{}, domain.ErrInvalidGSTIN
	}
	if len(req.Addresses) == 0 {
		return domain.Organisation{}, domain.ErrInvalidAddress
	}
	if strings.TrimSpace(req.Country) == "" {
		return domain.Organisation{}, domain.ErrInvalidCountry
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Organisation{}, domain.ErrInvalidEmail
	}
	// Format checks apply only when the country is one we ship rules for.
	if country, ok := reference.CountryByName(strings.TrimSpace(req.Country)); ok {
		if !country.ValidTaxID(strings.TrimSpace(req.GSTIN)) {
			return domain.Organisation{}, domain.ErrInvalidGSTIN
		}
		if phone := strings.TrimSpace(req.Phone); phone != "" && !country.ValidPhone(phone) {
			return domain.Organisation{}, domain.ErrInvalidPhone
		}
	}

	now := time.Now().UTC()
	organisation := domain.Organisation{
		ID:               s.genID.Generate(),
		OrganisationName: strings.TrimSpace(req.OrganisationName),
		CompanyName:      strings.TrimSpace(req.CompanyName),
		GSTIN:            strings.TrimSpace(req.GSTIN),
		Addresses:        datatypes.NewJSONSlice(req.Addresses),
		Country:          strings.TrimSpace(req.Country),
		CountryCode:      strings.TrimSpace(req.CountryCode),
		Phone:            strings.TrimSpace(req.Phone),
		Email:            email,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, &organisation); err != nil {
		return domain.Organisation{}, err
	}

	return organisation, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Organisation, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	organisations := make([]domain.Organisation, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		organisations = append(organisations, *item)
	}
	return organisations, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Organisation, error) {
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Organisation{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Organisation{}, err
	}
	if item == nil {
		return domain.Organisation{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (domain.Organisation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Organisation{}, domain.ErrInvalidEmail
	}

	item, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return domain.Organisation{}, err
	}
	if item == nil {
		return domain.Organisation{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateOrganisationRequest) (domain.Organisation, error) {
	parsed, err := s.parseID(req.ID)
	if err != nil {
		return domain.Organisation{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Organisation{}, err
	}
	if item == nil {
		return domain.Organisation{}, domain.ErrNotFound
	}

	if req.OrganisationName != nil {
		if strings.TrimSpace(*req.OrganisationName) == "" {
			return domain.Organisation{}, domain.ErrInvalidName
		}
		item.OrganisationName = strings.TrimSpace(*req.OrganisationName)
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
			return domain.Organisation{}, domain.ErrInvalidEmail
		}
		item.Email = email
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Organisation{}, err
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
