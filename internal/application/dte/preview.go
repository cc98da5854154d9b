package dte

import (
	"time"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

// PreviewInput armado fuera de línea: sin base de datos ni reserva de correlativo.
type PreviewInput struct {
	Tipo          string
	Profile       domaindte.FiscalProfile
	Establishment domaindte.Establishment
	Prior         int64 // documentos previos del tipo; el correlativo será Prior+1
	IssuedAt      time.Time
	Request       dto.IssueDTERequest
}

// Preview arma el documento con los mismos pasos que Issue, sin persistirlo.
// La contraparte solo puede venir en línea (Request.Receptor).
func Preview(cfg domaindte.Config, in PreviewInput) (domaindte.Document, error) {
	t, ok := domaindte.ParseDocumentType(in.Tipo)
	if !ok {
		return nil, &domaindte.ValidationError{Field: "tipoDte", Message: "tipo de documento no soportado: " + in.Tipo}
	}
	if err := domaindte.CheckProfile(in.Profile); err != nil {
		return nil, err
	}
	input, err := requestInput(t, in.Request)
	if err != nil {
		return nil, err
	}
	if in.Request.Receptor != nil {
		input.Counterparty = counterpartyFromRequest(*in.Request.Receptor)
	}
	est := in.Establishment
	if est.CodEstable == "" {
		est.CodEstable = cfg.CodEstable
	}
	if est.CodPuntoVenta == "" {
		est.CodPuntoVenta = cfg.CodPuntoVenta
	}
	issued := in.IssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	input.Profile = in.Profile
	input.Establishment = est
	input.IssuedAt = issued
	input.Sequence = domaindte.NewSequenceIdentifier(t, est.CodEstable, est.CodPuntoVenta, in.Prior)
	return domaindte.Assemble(cfg, input)
}
