package dto

// ActivityResponse actividad económica CAT-019.
type ActivityResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Known       bool   `json:"known"`
}

// MunicipalityResponse municipio CAT-013.
type MunicipalityResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DepartmentResponse departamento CAT-012 con sus municipios.
type DepartmentResponse struct {
	Code           string                 `json:"code"`
	Name           string                 `json:"name"`
	Municipalities []MunicipalityResponse `json:"municipios"`
}

// TaxResponse tributo CAT-015. Rate es fracción ("0.13").
type TaxResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Rate        string `json:"rate"`
	PerUnit     bool   `json:"per_unit"`
}

// PaymentMethodResponse traducción de forma de pago a CAT-017.
type PaymentMethodResponse struct {
	Input string `json:"input"`
	Code  string `json:"code"`
}
