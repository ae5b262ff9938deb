package domain

import (
	"context"
	"errors"

	"github.com/fessit/financesuite/pkg/db/pagination"
)

type CreateCustomerRequest struct {
	CustomerName string    `json:"customerName"`
	CompanyName  string    `json:"companyName"`
	GSTIN        string    `json:"gstIN"`
	Addresses    []Address `json:"addresses"`
	Country      string    `json:"country"`
	CountryCode  string    `json:"countryCode"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
}

type UpdateCustomerRequest struct {
	ID           string
	CustomerName *string    `json:"customerName"`
	CompanyName  *string    `json:"companyName"`
	GSTIN        *string    `json:"gstIN"`
	Addresses    *[]Address `json:"addresses"`
	Country      *string    `json:"country"`
	CountryCode  *string    `json:"countryCode"`
	Phone        *string    `json:"phone"`
	Email        *string    `json:"email"`
	IsActive     *bool      `json:"isActive"`
}

type ListCustomerRequest struct {
	PageToken string
	PageSize  int32
	Search    string
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName    = errors.New("invalid_customer_name")
	ErrInvalidCompany = errors.New("invalid_company_name")
	ErrInvalidGSTIN   = errors.New("invalid_gstin")
	ErrInvalidAddress = errors.New("invalid_address")
	ErrInvalidCountry = errors.New("invalid_country")
	ErrInvalidPhone   = errors.New("invalid_phone")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
