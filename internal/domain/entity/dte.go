package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTE registro persistido de un documento tributario electrónico.
// Documento guarda el JSON armado tal como se transmitiría.
type DTE struct {
	ID                string
	CompanyID         string
	CustomerID        string // vacío si la contraparte no está registrada
	TipoDTE           string // "01", "03", ...
	NumeroControl     string
	CodigoGeneracion  string
	Status            string // DRAFT, PENDING, SENT, REJECTED
	ReceptorNombre    string
	ReceptorDocumento string
	TotalGravada      decimal.Decimal
	TotalIVA          decimal.Decimal
	TotalRetenido     decimal.Decimal
	TotalPagar        decimal.Decimal
	Documento         []byte
	SelloRecibido     string // sello de recepción de Hacienda
	Observaciones     string // motivo de rechazo u observaciones de Hacienda
	FecEmi            time.Time
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DTEFilter criterios de listado.
type DTEFilter struct {
	TipoDTE string
	Status  string
	From    *time.Time
	To      *time.Time
}
