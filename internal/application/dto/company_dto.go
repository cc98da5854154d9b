package dto

import "time"

// UpdateCompanyProfileRequest perfil fiscal del emisor (reemplazo completo).
// NIT y NRC se aceptan con o sin guiones.
type UpdateCompanyProfileRequest struct {
	Name                string `json:"name" validate:"required,min=1,max=250"`
	TradeName           string `json:"trade_name"`
	NIT                 string `json:"nit"`
	NRC                 string `json:"nrc"`
	ActivityCode        string `json:"activity_code"`
	ActivityDescription string `json:"activity_description"` // vacío = se toma del catálogo
	EstablishmentType   string `json:"establishment_type"`   // CAT-009; vacío = 01 sucursal
	Department          string `json:"department" validate:"required,len=2"`
	Municipality        string `json:"municipality" validate:"required,len=2"`
	Address             string `json:"address"`
	Phone               string `json:"phone"`
	Email               string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse salida del perfil de la empresa.
type CompanyResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	TradeName           string    `json:"trade_name,omitempty"`
	NIT                 string    `json:"nit"`
	NRC                 string    `json:"nrc"`
	ActivityCode        string    `json:"activity_code"`
	ActivityDescription string    `json:"activity_description"`
	EstablishmentType   string    `json:"establishment_type"`
	Department          string    `json:"department"`
	DepartmentName      string    `json:"department_name"`
	Municipality        string    `json:"municipality"`
	MunicipalityName    string    `json:"municipality_name"`
	Address             string    `json:"address"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email"`
	Status              string    `json:"status"`
	CanIssue            bool      `json:"can_issue"` // tiene NIT y NRC
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CreateEstablishmentRequest body para POST /api/company/establishments.
type CreateEstablishmentRequest struct {
	Name            string `json:"name" validate:"required"`
	Type            string `json:"type"` // CAT-009
	CodEstable      string `json:"cod_estable"`
	CodPuntoVenta   string `json:"cod_punto_venta"`
	CodEstableMH    string `json:"cod_estable_mh"`
	CodPuntoVentaMH string `json:"cod_punto_venta_mh"`
	Active          bool   `json:"active"`
}

// EstablishmentResponse establecimiento registrado.
type EstablishmentResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	CodEstable      string    `json:"cod_estable"`
	CodPuntoVenta   string    `json:"cod_punto_venta"`
	CodEstableMH    string    `json:"cod_estable_mh,omitempty"`
	CodPuntoVentaMH string    `json:"cod_punto_venta_mh,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}
