package entity

import "time"

// Establishment establecimiento y punto de venta registrados ante Hacienda.
// Cada empresa tiene a lo sumo uno activo; sus códigos se usan en el número de control.
type Establishment struct {
	ID              string
	CompanyID       string
	Name            string
	Type            string // CAT-009
	CodEstable      string // 4 caracteres
	CodPuntoVenta   string // 3 caracteres
	CodEstableMH    string // asignado por Hacienda
	CodPuntoVentaMH string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
