package entity

import (
	"time"

	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

// Customer contraparte habitual de la empresa: cliente, proveedor excluido o donante.
type Customer struct {
	ID                  string
	CompanyID           string
	Name                string
	TradeName           string
	DocumentType        string // CAT-022; vacío = se infiere
	DocumentNumber      string // DUI, pasaporte, etc.
	NIT                 string
	NRC                 string
	ActivityCode        string
	ActivityDescription string
	Department          string
	Municipality        string
	Address             string
	CountryCode         string // solo receptores extranjeros
	CountryName         string
	PersonType          int
	Email               string
	Phone               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Counterparty proyecta el cliente al bloque de contraparte del DTE.
func (c *Customer) Counterparty() dte.Counterparty {
	return dte.Counterparty{
		DocumentType:        c.DocumentType,
		DocumentNumber:      c.DocumentNumber,
		NIT:                 c.NIT,
		NRC:                 c.NRC,
		Name:                c.Name,
		TradeName:           c.TradeName,
		ActivityCode:        c.ActivityCode,
		ActivityDescription: c.ActivityDescription,
		Department:          c.Department,
		Municipality:        c.Municipality,
		AddressComplement:   c.Address,
		Phone:               c.Phone,
		Email:               c.Email,
		CountryCode:         c.CountryCode,
		CountryName:         c.CountryName,
		PersonType:          c.PersonType,
	}
}
