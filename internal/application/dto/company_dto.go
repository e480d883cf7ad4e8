package dto

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	TaxID        string `json:"tax_id"`
	CurrencyCode string `json:"currency_code" validate:"omitempty,len=3"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TaxID        string `json:"tax_id"`
	CurrencyCode string `json:"currency_code"`
}
