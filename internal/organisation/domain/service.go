package domain

import (
	"context"
	"errors"
)

type CreateOrganisationRequest struct {
	OrganisationName string    `json:"organizationName"`
	CompanyName      string    `json:"companyName"`
	GSTIN            string    `json:"gstIN"`
	Addresses        []Address `json:"addresses"`
	Country          string    `json:"country"`
	CountryCode      string    `json:"countryCode"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
}

type UpdateOrganisationRequest struct {
	ID               string
	OrganisationName *string    `json:"organizationName"`
	CompanyName      *string    `json:"companyName"`
	GSTIN            *string    `json:"gstIN"`
	Addresses        *[]Address `json:"addresses"`
	Country          *string    `json:"country"`
	CountryCode      *string    `json:"countryCode"`
	Phone            *string    `json:"phone"`
	Email            *string    `json:"email"`
}

type Service interface {
	Create(context.Context, CreateOrganisationRequest) (Organisation, error)
	List(context.Context) ([]Organisation, error)
	GetByID(ctx context.Context, id string) (Organisation, error)
	GetByEmail(ctx context.Context, email string) (Organisation, error)
	Update(context.Context, UpdateOrganisationRequest) (Organisation, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName    = errors.New("invalid_organisation_name")
	ErrInvalidCompany = errors.New("invalid_company_name")
	ErrInvalidGSTIN   = errors.New("invalid_gstin")
	ErrInvalidAddress = errors.New("invalid_address")
	ErrInvalidCountry = errors.New("invalid_country")
	ErrInvalidPhone   = errors.New("invalid_phone")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
