package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// IssueDTERequest body para POST /api/dte/:tipo.
// La contraparte se toma de CustomerID (cliente registrado) o de Receptor (datos en línea).
// Items se valida estructuralmente en el núcleo antes de calcular.
type IssueDTERequest struct {
	CustomerID   string                   `json:"customer_id,omitempty"`
	Receptor     *CounterpartyRequest     `json:"receptor,omitempty"`
	Items        json.RawMessage          `json:"items" swaggertype:"array,object"`
	Deductions   decimal.Decimal          `json:"deducciones"` // liquidaciones (08, 09)
	Commission   decimal.Decimal          `json:"comision"`    // liquidaciones (08, 09)
	Payment      *PaymentRequest          `json:"pago,omitempty"`
	Related      []RelatedDocumentRequest `json:"documentos_relacionados,omitempty"`
	Extension    *ExtensionRequest        `json:"extension,omitempty"`
	Appendix     []AppendixRequest        `json:"apendice,omitempty"`
	Observations string                   `json:"observaciones,omitempty"`
	BienTitulo   string                   `json:"bien_titulo,omitempty"` // nota de remisión (CAT-025)
}

// CounterpartyRequest datos de la contraparte (cliente, donante, sujeto excluido...).
type CounterpartyRequest struct {
	DocumentType        string `json:"tipo_documento,omitempty"`
	DocumentNumber      string `json:"num_documento,omitempty"`
	NIT                 string `json:"nit,omitempty"`
	NRC                 string `json:"nrc,omitempty"`
	Name                string `json:"nombre"`
	TradeName           string `json:"nombre_comercial,omitempty"`
	ActivityCode        string `json:"cod_actividad,omitempty"`
	ActivityDescription string `json:"desc_actividad,omitempty"`
	Department          string `json:"departamento,omitempty"`
	Municipality        string `json:"municipio,omitempty"`
	Address             string `json:"complemento,omitempty"`
	CountryCode         string `json:"cod_pais,omitempty"`
	CountryName         string `json:"nombre_pais,omitempty"`
	PersonType          int    `json:"tipo_persona,omitempty"`
	Email               string `json:"correo,omitempty"`
	Phone               string `json:"telefono,omitempty"`
}

// PaymentRequest condición y forma de pago.
type PaymentRequest struct {
	Method    string `json:"forma_pago"` // código interno (efectivo, tarjeta...) o CAT-017
	Reference string `json:"referencia,omitempty"`
	Condition int    `json:"condicion,omitempty"` // 1 contado, 2 crédito, 3 otro
	Term      string `json:"plazo,omitempty"`
	Period    int    `json:"periodo,omitempty"`
}

// RelatedDocumentRequest documento que ajusta una nota de crédito o débito.
type RelatedDocumentRequest struct {
	TipoDTE        string `json:"tipo_dte"`
	GenerationType int    `json:"tipo_generacion"`
	Number         string `json:"numero_documento"`
	IssuedAt       string `json:"fecha_emision"` // YYYY-MM-DD
}

// ExtensionRequest datos de entrega y recepción.
type ExtensionRequest struct {
	NombEntrega   string `json:"nomb_entrega,omitempty"`
	DocuEntrega   string `json:"docu_entrega,omitempty"`
	NombRecibe    string `json:"nomb_recibe,omitempty"`
	DocuRecibe    string `json:"docu_recibe,omitempty"`
	Observaciones string `json:"observaciones,omitempty"`
	PlacaVehiculo string `json:"placa_vehiculo,omitempty"`
}

// AppendixRequest campo libre del apéndice.
type AppendixRequest struct {
	Campo    string `json:"campo"`
	Etiqueta string `json:"etiqueta"`
	Valor    string `json:"valor"`
}

// DTEResponse documento emitido. Documento solo se incluye en el detalle.
type DTEResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	CustomerID        string          `json:"customer_id,omitempty"`
	TipoDTE           string          `json:"tipo_dte"`
	TipoNombre        string          `json:"tipo_nombre"`
	NumeroControl     string          `json:"numero_control"`
	CodigoGeneracion  string          `json:"codigo_generacion"`
	Status            string          `json:"status"`
	ReceptorNombre    string          `json:"receptor_nombre,omitempty"`
	ReceptorDocumento string          `json:"receptor_documento,omitempty"`
	TotalGravada      decimal.Decimal `json:"total_gravada"`
	TotalIVA          decimal.Decimal `json:"total_iva"`
	TotalRetenido     decimal.Decimal `json:"total_retenido"`
	TotalPagar        decimal.Decimal `json:"total_pagar"`
	SelloRecibido     string          `json:"sello_recibido,omitempty"`
	Observaciones     string          `json:"observaciones,omitempty"`
	FecEmi            time.Time       `json:"fec_emi"`
	CreatedAt         time.Time       `json:"created_at"`
	Documento         json.RawMessage `json:"documento,omitempty" swaggertype:"object"`
}

// DTEListRequest filtros de GET /api/dte (query string).
type DTEListRequest struct {
	PageRequest
	TipoDTE string `query:"tipo"`
	Status  string `query:"status"`
	From    string `query:"desde"` // YYYY-MM-DD inclusive
	To      string `query:"hasta"` // YYYY-MM-DD inclusive
}

// DTEListResponse lista paginada de documentos.
type DTEListResponse struct {
	Items []DTEResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// DTEStatusDTO respuesta ligera para GET /api/dte/:id/status.
// El cliente consulta periódicamente hasta que status sea SENT o REJECTED.
type DTEStatusDTO struct {
	ID               string    `json:"id"`
	TipoDTE          string    `json:"tipo_dte"`
	NumeroControl    string    `json:"numero_control"`
	CodigoGeneracion string    `json:"codigo_generacion"`
	Status           string    `json:"status"` // DRAFT|PENDING|SENT|REJECTED
	SelloRecibido    string    `json:"sello_recibido"`
	Observaciones    string    `json:"observaciones"` // motivo de rechazo (vacío si OK)
	UpdatedAt        time.Time `json:"updated_at"`
}

// TransmissionRequest resultado de la transmisión a Hacienda, informado por el colaborador externo.
type TransmissionRequest struct {
	Status        string `json:"status" validate:"required,oneof=SENT REJECTED"`
	SelloRecibido string `json:"sello_recibido,omitempty"` // obligatorio si SENT
	Observaciones string `json:"observaciones,omitempty"`  // obligatorio si REJECTED
}
