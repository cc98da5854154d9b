package entity

import (
	"time"

	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

// Estados de la empresa (tenant).
const (
	CompanyActive    = "active"
	CompanySuspended = "suspended"
)

// Company representa un contribuyente emisor (tenant) con su perfil fiscal ante Hacienda.
type Company struct {
	ID                  string
	Name                string // razón social
	TradeName           string // nombre comercial
	NIT                 string // sin guiones
	NRC                 string // sin guiones
	ActivityCode        string // CAT-019
	ActivityDescription string
	EstablishmentType   string // CAT-009
	Department          string // CAT-012
	Municipality        string // CAT-013
	Address             string // complemento de la dirección
	Phone               string
	Email               string
	Status              string // active, suspended
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FiscalProfile proyecta la empresa al perfil que consume el armado del DTE.
func (c *Company) FiscalProfile() dte.FiscalProfile {
	return dte.FiscalProfile{
		NIT:                 c.NIT,
		NRC:                 c.NRC,
		Name:                c.Name,
		TradeName:           c.TradeName,
		ActivityCode:        c.ActivityCode,
		ActivityDescription: c.ActivityDescription,
		EstablishmentType:   c.EstablishmentType,
		Department:          c.Department,
		Municipality:        c.Municipality,
		AddressComplement:   c.Address,
		Phone:               c.Phone,
		Email:               c.Email,
	}
}
