package dte

import "github.com/shopspring/decimal"

// Amount monto serializado como número JSON con dos decimales fijos ("78.00" → 78.00).
type Amount decimal.Decimal

// NewAmount redondea a centavos.
func NewAmount(d decimal.Decimal) Amount { return Amount(d.Round(2)) }

// Decimal devuelve el valor subyacente.
func (a Amount) Decimal() decimal.Decimal { return decimal.Decimal(a) }

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = Amount(d)
	return nil
}

// ── Bloques compartidos ───────────────────────────────────────────────────────

// Identificacion bloque "identificacion" común a todos los tipos.
type Identificacion struct {
	Version          int     `json:"version"`
	Ambiente         string  `json:"ambiente"`
	TipoDte          string  `json:"tipoDte"`
	NumeroControl    string  `json:"numeroControl"`
	CodigoGeneracion string  `json:"codigoGeneracion"`
	TipoModelo       int     `json:"tipoModelo"`
	TipoOperacion    int     `json:"tipoOperacion"`
	TipoContingencia *int    `json:"tipoContingencia"`
	MotivoContin     *string `json:"motivoContin"`
	FecEmi           string  `json:"fecEmi"`
	HorEmi           string  `json:"horEmi"`
	TipoMoneda       string  `json:"tipoMoneda"`
}

// Direccion ubicación según CAT-012/CAT-013.
type Direccion struct {
	Departamento string `json:"departamento"`
	Municipio    string `json:"municipio"`
	Complemento  string `json:"complemento"`
}

// Emisor datos base del contribuyente emisor.
type Emisor struct {
	NIT           string    `json:"nit"`
	NRC           string    `json:"nrc"`
	Nombre        string    `json:"nombre"`
	CodActividad  string    `json:"codActividad"`
	DescActividad string    `json:"descActividad"`
	Direccion     Direccion `json:"direccion"`
	Telefono      string    `json:"telefono"`
	Correo        string    `json:"correo"`
}

// EmisorComercial agrega nombre comercial y tipo de establecimiento.
type EmisorComercial struct {
	Emisor
	NombreComercial     *string `json:"nombreComercial"`
	TipoEstablecimiento string  `json:"tipoEstablecimiento"`
}

// PuntoVenta códigos de establecimiento y punto de venta.
type PuntoVenta struct {
	CodEstableMH    *string `json:"codEstableMH"`
	CodEstable      *string `json:"codEstable"`
	CodPuntoVentaMH *string `json:"codPuntoVentaMH"`
	CodPuntoVenta   *string `json:"codPuntoVenta"`
}

// EmisorEstablecimiento emisor con datos comerciales y de punto de venta.
type EmisorEstablecimiento struct {
	EmisorComercial
	PuntoVenta
}

// EmisorSucursal emisor con punto de venta pero sin datos comerciales (FSE, DCL).
type EmisorSucursal struct {
	Emisor
	PuntoVenta
}

// Tributo entrada del resumen de impuestos (CAT-015).
type Tributo struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
	Valor       Amount `json:"valor"`
}

// Pago forma de pago (CAT-017).
type Pago struct {
	Codigo     string  `json:"codigo"`
	MontoPago  Amount  `json:"montoPago"`
	Referencia *string `json:"referencia"`
	Plazo      *string `json:"plazo"`
	Periodo    *int    `json:"periodo"`
}

// DocumentoRelacionado documento que se ajusta o referencia.
type DocumentoRelacionado struct {
	TipoDocumento   string `json:"tipoDocumento"`
	TipoGeneracion  int    `json:"tipoGeneracion"`
	NumeroDocumento string `json:"numeroDocumento"`
	FechaEmision    string `json:"fechaEmision"`
}

// Extension datos de entrega y recepción.
type Extension struct {
	NombEntrega   *string `json:"nombEntrega"`
	DocuEntrega   *string `json:"docuEntrega"`
	NombRecibe    *string `json:"nombRecibe"`
	DocuRecibe    *string `json:"docuRecibe"`
	Observaciones *string `json:"observaciones"`
	PlacaVehiculo *string `json:"placaVehiculo,omitempty"`
}

// Apendice campo libre adicional.
type Apendice struct {
	Campo    string `json:"campo"`
	Etiqueta string `json:"etiqueta"`
	Valor    string `json:"valor"`
}

// ── Receptores ────────────────────────────────────────────────────────────────

// ReceptorConsumidor receptor de factura; todos los campos pueden ser nulos.
type ReceptorConsumidor struct {
	TipoDocumento *string    `json:"tipoDocumento"`
	NumDocumento  *string    `json:"numDocumento"`
	NRC           *string    `json:"nrc"`
	Nombre        *string    `json:"nombre"`
	CodActividad  *string    `json:"codActividad"`
	DescActividad *string    `json:"descActividad"`
	Direccion     *Direccion `json:"direccion"`
	Telefono      *string    `json:"telefono"`
	Correo        *string    `json:"correo"`
}

// ReceptorContribuyente receptor inscrito en IVA (CCF, NC, ND, CL).
type ReceptorContribuyente struct {
	NIT             string    `json:"nit"`
	NRC             string    `json:"nrc"`
	Nombre          string    `json:"nombre"`
	CodActividad    string    `json:"codActividad"`
	DescActividad   string    `json:"descActividad"`
	NombreComercial *string   `json:"nombreComercial"`
	Direccion       Direccion `json:"direccion"`
	Telefono        *string   `json:"telefono"`
	Correo          string    `json:"correo"`
}

// ReceptorDocumento receptor identificado por documento (NR, CR).
type ReceptorDocumento struct {
	TipoDocumento   string    `json:"tipoDocumento"`
	NumDocumento    string    `json:"numDocumento"`
	NRC             *string   `json:"nrc"`
	Nombre          string    `json:"nombre"`
	CodActividad    *string   `json:"codActividad"`
	DescActividad   *string   `json:"descActividad"`
	NombreComercial *string   `json:"nombreComercial"`
	Direccion       Direccion `json:"direccion"`
	Telefono        *string   `json:"telefono"`
	Correo          string    `json:"correo"`
}

// ReceptorRemision receptor de nota de remisión con el título de los bienes (CAT-025).
type ReceptorRemision struct {
	ReceptorDocumento
	BienTitulo string `json:"bienTitulo"`
}

// ReceptorExportacion receptor extranjero: país en lugar de departamento/municipio.
type ReceptorExportacion struct {
	Nombre          string  `json:"nombre"`
	TipoDocumento   string  `json:"tipoDocumento"`
	NumDocumento    string  `json:"numDocumento"`
	NombreComercial *string `json:"nombreComercial"`
	CodPais         string  `json:"codPais"`
	NombrePais      string  `json:"nombrePais"`
	Complemento     string  `json:"complemento"`
	TipoPersona     int     `json:"tipoPersona"`
	DescActividad   *string `json:"descActividad"`
	Telefono        *string `json:"telefono"`
	Correo          *string `json:"correo"`
}

// SujetoExcluido proveedor no inscrito (FSE, DCL).
type SujetoExcluido struct {
	TipoDocumento string    `json:"tipoDocumento"`
	NumDocumento  string    `json:"numDocumento"`
	Nombre        string    `json:"nombre"`
	CodActividad  *string   `json:"codActividad"`
	DescActividad *string   `json:"descActividad"`
	Direccion     Direccion `json:"direccion"`
	Telefono      *string   `json:"telefono"`
	Correo        *string   `json:"correo"`
}

// Donatario entidad que recibe la donación y emite el comprobante.
type Donatario struct {
	TipoDocumento       string    `json:"tipoDocumento"`
	NumDocumento        string    `json:"numDocumento"`
	NRC                 string    `json:"nrc"`
	Nombre              string    `json:"nombre"`
	CodActividad        string    `json:"codActividad"`
	DescActividad       string    `json:"descActividad"`
	NombreComercial     *string   `json:"nombreComercial"`
	TipoEstablecimiento string    `json:"tipoEstablecimiento"`
	Direccion           Direccion `json:"direccion"`
	Telefono            string    `json:"telefono"`
	Correo              string    `json:"correo"`
	PuntoVenta
}

// Donante persona que realiza la donación.
type Donante struct {
	TipoDocumento  string     `json:"tipoDocumento"`
	NumDocumento   string     `json:"numDocumento"`
	NRC            *string    `json:"nrc"`
	Nombre         string     `json:"nombre"`
	CodActividad   *string    `json:"codActividad"`
	DescActividad  *string    `json:"descActividad"`
	Direccion      *Direccion `json:"direccion"`
	Telefono       *string    `json:"telefono"`
	Correo         *string    `json:"correo"`
	CodDomiciliado int        `json:"codDomiciliado"`
	CodPais        string     `json:"codPais"`
}
