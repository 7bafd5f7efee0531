package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	BaseCurrency string `json:"base_currency" validate:"required,len=3"`
	FYStartMonth int    `json:"fy_start_month" validate:"required,min=1,max=12"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BaseCurrency string    `json:"base_currency"`
	FYStartMonth int       `json:"fy_start_month"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CompanyListResponse empresas a las que el usuario tiene acceso.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}
