package dte

import (
	"strings"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

// CounterpartyFromRequest convierte los datos en línea de la contraparte.
func CounterpartyFromRequest(r dto.CounterpartyRequest) domaindte.Counterparty {
	return counterpartyFromRequest(r)
}

func counterpartyFromRequest(r dto.CounterpartyRequest) domaindte.Counterparty {
	return domaindte.Counterparty{
		DocumentType:        strings.TrimSpace(r.DocumentType),
		DocumentNumber:      strings.TrimSpace(r.DocumentNumber),
		NIT:                 strings.TrimSpace(r.NIT),
		NRC:                 strings.TrimSpace(r.NRC),
		Name:                strings.TrimSpace(r.Name),
		TradeName:           strings.TrimSpace(r.TradeName),
		ActivityCode:        strings.TrimSpace(r.ActivityCode),
		ActivityDescription: strings.TrimSpace(r.ActivityDescription),
		Department:          r.Department,
		Municipality:        r.Municipality,
		AddressComplement:   strings.TrimSpace(r.Address),
		Phone:               strings.TrimSpace(r.Phone),
		Email:               strings.TrimSpace(r.Email),
		CountryCode:         strings.TrimSpace(r.CountryCode),
		CountryName:         strings.TrimSpace(r.CountryName),
		PersonType:          r.PersonType,
	}
}

func payment(p *dto.PaymentRequest) domaindte.Payment {
	if p == nil {
		return domaindte.Payment{}
	}
	return domaindte.Payment{
		Method:    p.Method,
		Reference: p.Reference,
		Condition: p.Condition,
		Term:      p.Term,
		Period:    p.Period,
	}
}

func extension(e *dto.ExtensionRequest) *domaindte.Extension {
	if e == nil {
		return nil
	}
	return &domaindte.Extension{
		NombEntrega:   optional(e.NombEntrega),
		DocuEntrega:   optional(e.DocuEntrega),
		NombRecibe:    optional(e.NombRecibe),
		DocuRecibe:    optional(e.DocuRecibe),
		Observaciones: optional(e.Observaciones),
		PlacaVehiculo: optional(e.PlacaVehiculo),
	}
}

func appendix(in []dto.AppendixRequest) []domaindte.Apendice {
	if len(in) == 0 {
		return nil
	}
	out := make([]domaindte.Apendice, len(in))
	for i, a := range in {
		out[i] = domaindte.Apendice{Campo: a.Campo, Etiqueta: a.Etiqueta, Valor: a.Valor}
	}
	return out
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// toDTEResponse mapea la entidad; withDocument incluye el JSON armado.
func toDTEResponse(d *entity.DTE, withDocument bool) *dto.DTEResponse {
	if d == nil {
		return nil
	}
	out := &dto.DTEResponse{
		ID:                d.ID,
		CompanyID:         d.CompanyID,
		CustomerID:        d.CustomerID,
		TipoDTE:           d.TipoDTE,
		TipoNombre:        tipoNombre(d.TipoDTE),
		NumeroControl:     d.NumeroControl,
		CodigoGeneracion:  d.CodigoGeneracion,
		Status:            d.Status,
		ReceptorNombre:    d.ReceptorNombre,
		ReceptorDocumento: d.ReceptorDocumento,
		TotalGravada:      d.TotalGravada,
		TotalIVA:          d.TotalIVA,
		TotalRetenido:     d.TotalRetenido,
		TotalPagar:        d.TotalPagar,
		SelloRecibido:     d.SelloRecibido,
		Observaciones:     d.Observaciones,
		FecEmi:            d.FecEmi,
		CreatedAt:         d.CreatedAt,
	}
	if withDocument && len(d.Documento) > 0 {
		out.Documento = d.Documento
	}
	return out
}

func toStatusDTO(d *entity.DTE) *dto.DTEStatusDTO {
	return &dto.DTEStatusDTO{
		ID:               d.ID,
		TipoDTE:          d.TipoDTE,
		NumeroControl:    d.NumeroControl,
		CodigoGeneracion: d.CodigoGeneracion,
		Status:           d.Status,
		SelloRecibido:    d.SelloRecibido,
		Observaciones:    d.Observaciones,
		UpdatedAt:        d.UpdatedAt,
	}
}

func tipoNombre(code string) string {
	if t, ok := domaindte.ParseDocumentType(code); ok {
		return t.Name()
	}
	return code
}
