// Package dte implementa el núcleo de cálculo y armado de Documentos
// Tributarios Electrónicos (DTE) de El Salvador: totales e impuestos, número
// de control y código de generación, monto en letras y la estructura JSON
// exigida por el Ministerio de Hacienda para cada tipo de documento.
//
// Todas las funciones son puras: no acceden a base de datos, reloj ni entorno.
// Quien llama suministra el perfil fiscal, el receptor, los ítems, la fecha de
// emisión y el número de documentos previos del mismo tipo.
package dte

import "strings"

// DocumentType identifica el tipo de DTE (CAT-002).
type DocumentType int

const (
	Factura                      DocumentType = iota + 1 // 01 FE
	CreditoFiscal                                        // 03 CCF
	NotaRemision                                         // 04 NR
	NotaCredito                                          // 05 NC
	NotaDebito                                           // 06 ND
	ComprobanteRetencion                                 // 07 CR
	ComprobanteLiquidacion                               // 08 CL
	DocumentoContableLiquidacion                         // 09 DCL
	FacturaExportacion                                   // 11 FEXE
	FacturaSujetoExcluido                                // 14 FSE
	ComprobanteDonacion                                  // 15 CD
)

// calcKind agrupa los tipos por regla de cálculo de totales.
type calcKind int

const (
	kindVAT         calcKind = iota // IVA 13% sobre lo gravado
	kindExempt                      // exportación: todo exento
	kindInformative                 // sin impuesto (remisión, sujeto excluido, donación)
	kindWithholding                 // comprobante de retención
	kindSettlement                  // liquidaciones
)

type typeInfo struct {
	code    string
	version int
	short   string
	name    string
	kind    calcKind
}

var typeTable = map[DocumentType]typeInfo{
	Factura:                      {"01", 1, "FE", "Factura", kindVAT},
	CreditoFiscal:                {"03", 3, "CCF", "Comprobante de Crédito Fiscal", kindVAT},
	NotaRemision:                 {"04", 3, "NR", "Nota de Remisión", kindInformative},
	NotaCredito:                  {"05", 3, "NC", "Nota de Crédito", kindVAT},
	NotaDebito:                   {"06", 3, "ND", "Nota de Débito", kindVAT},
	ComprobanteRetencion:         {"07", 1, "CR", "Comprobante de Retención", kindWithholding},
	ComprobanteLiquidacion:       {"08", 1, "CL", "Comprobante de Liquidación", kindSettlement},
	DocumentoContableLiquidacion: {"09", 1, "DCL", "Documento Contable de Liquidación", kindSettlement},
	FacturaExportacion:           {"11", 1, "FEXE", "Factura de Exportación", kindExempt},
	FacturaSujetoExcluido:        {"14", 1, "FSE", "Factura de Sujeto Excluido", kindInformative},
	ComprobanteDonacion:          {"15", 1, "CD", "Comprobante de Donación", kindInformative},
}

// AllTypes devuelve los tipos soportados en orden de código.
func AllTypes() []DocumentType {
	return []DocumentType{
		Factura, CreditoFiscal, NotaRemision, NotaCredito, NotaDebito, ComprobanteRetencion,
		ComprobanteLiquidacion, DocumentoContableLiquidacion, FacturaExportacion,
		FacturaSujetoExcluido, ComprobanteDonacion,
	}
}

// ParseDocumentType acepta el código de dos dígitos ("01") o la sigla ("FE", "ccf").
func ParseDocumentType(s string) (DocumentType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, info := range typeTable {
		if info.code == s || info.short == s {
			return t, true
		}
	}
	return 0, false
}

// Code devuelve el código tipoDte de dos dígitos.
func (t DocumentType) Code() string { return typeTable[t].code }

// Version devuelve la versión del esquema JSON vigente para el tipo.
func (t DocumentType) Version() int { return typeTable[t].version }

// Short devuelve la sigla (FE, CCF, ...).
func (t DocumentType) Short() string { return typeTable[t].short }

// Name devuelve el nombre legible del tipo.
func (t DocumentType) Name() string { return typeTable[t].name }

// Valid informa si el tipo está soportado.
func (t DocumentType) Valid() bool {
	_, ok := typeTable[t]
	return ok
}

// AppliesVAT informa si el tipo grava IVA 13%.
func (t DocumentType) AppliesVAT() bool { return typeTable[t].kind == kindVAT }

// RequiresRelatedDocument informa si el tipo ajusta un documento previo (NC/ND).
func (t DocumentType) RequiresRelatedDocument() bool {
	return t == NotaCredito || t == NotaDebito
}

// RequiresTaxpayerReceiver informa si el receptor debe ser contribuyente (NIT y NRC).
func (t DocumentType) RequiresTaxpayerReceiver() bool {
	switch t {
	case CreditoFiscal, NotaCredito, NotaDebito, ComprobanteLiquidacion:
		return true
	}
	return false
}

func (t DocumentType) String() string {
	if !t.Valid() {
		return "desconocido"
	}
	return t.Short()
}

// Status estado de un DTE dentro del ciclo de emisión.
type Status string

const (
	StatusDraft    Status = "DRAFT"    // registrado sin JSON
	StatusPending  Status = "PENDING"  // JSON armado, pendiente de transmisión
	StatusSent     Status = "SENT"     // aceptado por Hacienda (sello recibido)
	StatusRejected Status = "REJECTED" // rechazado por Hacienda
)

// CanTransition informa si el cambio de estado es válido.
// DRAFT → PENDING lo hace el armado; PENDING → SENT|REJECTED lo hace la transmisión.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusDraft:
		return to == StatusPending
	case StatusPending:
		return to == StatusSent || to == StatusRejected
	}
	return false
}
