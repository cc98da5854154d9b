// Package hacienda contiene los catálogos del sistema de transmisión DTE del
// Ministerio de Hacienda de El Salvador y utilidades para NIT/NRC.
//
// Las tablas son estáticas y versionadas: cualquier cambio regulatorio se
// refleja incrementando CatalogVersion. Todas las búsquedas son totales: un
// código desconocido devuelve un valor vacío o de respaldo, nunca un error.
package hacienda

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogVersion identifica la revisión de los catálogos embebidos.
const CatalogVersion = "MH-DTE-2023.1"

// =============================================================================
// CAT-001 Ambiente de destino
// =============================================================================

const (
	AmbientePruebas    = "00"
	AmbienteProduccion = "01"
)

// ValidAmbiente informa si el código de ambiente es aceptado por Hacienda.
func ValidAmbiente(code string) bool {
	return code == AmbientePruebas || code == AmbienteProduccion
}

// =============================================================================
// CAT-003 Modelo de facturación / CAT-004 Tipo de transmisión
// =============================================================================

const (
	ModeloPrevio   = 1 // Modelo facturación previo
	ModeloDiferido = 2 // Modelo facturación diferido

	TransmisionNormal       = 1
	TransmisionContingencia = 2
)

// =============================================================================
// CAT-009 Tipo de establecimiento
// =============================================================================

const (
	EstablecimientoSucursal   = "01" // Sucursal / Agencia
	EstablecimientoCasaMatriz = "02"
	EstablecimientoBodega     = "04"
	EstablecimientoPatio      = "07"
	EstablecimientoOtro       = "20"

	// EstablecimientoPredeterminado se usa cuando el perfil no declara tipo.
	EstablecimientoPredeterminado = EstablecimientoSucursal
)

// =============================================================================
// CAT-011 Tipo de ítem / CAT-014 Unidad de medida / CAT-016 Condición de la operación
// =============================================================================

const (
	TipoItemBienes    = 1
	TipoItemServicios = 2
	TipoItemAmbos     = 3
	TipoItemTributo   = 4

	UnidadMedidaUnidad = 59
	UnidadMedidaOtra   = 99

	CondicionContado = 1
	CondicionCredito = 2
	CondicionOtro    = 3
)

// =============================================================================
// CAT-006 Retención IVA MH
// =============================================================================

const (
	RetencionIVA1     = "22" // Retención IVA 1%
	RetencionIVA13    = "C4" // Retención IVA 13%
	RetencionEspecial = "C9" // Otras retenciones IVA casos especiales
)

// =============================================================================
// CAT-025 Título a que se remiten los bienes (nota de remisión)
// =============================================================================

const (
	TituloDeposito     = "01"
	TituloPropiedad    = "02"
	TituloConsignacion = "03"
	TituloTraslado     = "04"
	TituloOtros        = "05"
)

// =============================================================================
// CAT-029 Tipo de persona
// =============================================================================

const (
	PersonaNatural  = 1
	PersonaJuridica = 2
)

// =============================================================================
// CAT-019 Actividad económica (subconjunto de uso frecuente)
// =============================================================================

// DefaultActivityCode es la actividad genérica usada cuando no hay otra información.
const DefaultActivityCode = "10005"

var activities = map[string]string{
	"01111": "Cultivo de cereales excepto arroz y para forrajes",
	"01460": "Cría de aves de corral y producción de huevos",
	"10711": "Elaboración de tortillas",
	"10712": "Fabricación de pan, galletas y barquillos",
	"41001": "Construcción de edificios residenciales",
	"45201": "Reparación mecánica de automotores",
	"46900": "Venta al por mayor de otros productos",
	"47111": "Venta en supermercados",
	"47190": "Venta al por menor de otros productos en comercios no especializados",
	"47300": "Venta de combustibles, lubricantes y otros (gasolineras)",
	"47721": "Venta al por menor de medicamentos farmacéuticos y otros materiales y artículos de uso médico, odontológico y veterinario",
	"49231": "Transporte nacional de carga",
	"55101": "Actividades de alojamiento para estancias cortas",
	"56101": "Restaurantes",
	"62010": "Programación informática",
	"62020": "Consultorías y gestión de servicios informáticos",
	"63110": "Procesamiento de datos, alojamiento y actividades conexas",
	"68101": "Servicio de alquiler y venta de lotes en cementerios",
	"69100": "Actividades jurídicas",
	"69200": "Actividades de contabilidad, teneduría de libros y auditoría; asesoramiento en materia de impuestos",
	"70200": "Actividades de consultoría en gestión empresarial",
	"71101": "Servicios de arquitectura y planificación urbana y servicios conexos",
	"73100": "Publicidad",
	"82110": "Actividades combinadas de servicios administrativos de oficina",
	"85499": "Otros tipos de enseñanza n.c.p.",
	"86201": "Clínicas médicas",
	"94910": "Actividades de organizaciones religiosas",
	"94990": "Actividades de asociaciones n.c.p.",
	"96020": "Peluquería y otros tratamientos de belleza",
	"10001": "Empleados",
	"10003": "Estudiante",
	"10004": "Desempleado",
	"10005": "Otros",
}

// ActivityDescription resuelve la descripción de una actividad económica.
// Cadena de respaldo: catálogo → descripción libre del contribuyente → "Otros".
func ActivityDescription(code, override string) string {
	if desc, ok := activities[strings.TrimSpace(code)]; ok {
		return desc
	}
	if o := strings.TrimSpace(override); o != "" {
		return o
	}
	return activities[DefaultActivityCode]
}

// KnownActivity informa si el código existe en el catálogo embebido.
func KnownActivity(code string) bool {
	_, ok := activities[code]
	return ok
}

// =============================================================================
// CAT-015 Tributos
// =============================================================================

// TaxIVA es el código del Impuesto al Valor Agregado 13%.
const TaxIVA = "20"

// Tax describe un tributo del catálogo. Rate es una fracción (0.13 = 13%);
// los tributos específicos por unidad llevan Rate cero y PerUnit en true.
type Tax struct {
	Code        string
	Description string
	Rate        decimal.Decimal
	PerUnit     bool
}

// IVARate tasa general del IVA.
var IVARate = decimal.RequireFromString("0.13")

var taxes = map[string]Tax{
	"20": {Code: "20", Description: "Impuesto al Valor Agregado 13%", Rate: IVARate},
	"C3": {Code: "C3", Description: "Impuesto al Valor Agregado (exportaciones) 0%", Rate: decimal.Zero},
	"59": {Code: "59", Description: "Turismo: por alojamiento (5%)", Rate: decimal.RequireFromString("0.05")},
	"71": {Code: "71", Description: "Turismo: salida del país por vía aérea $7.00", PerUnit: true},
	"D1": {Code: "D1", Description: "FOVIAL ($0.20 Ctvs. por galón)", PerUnit: true},
	"C8": {Code: "C8", Description: "COTRANS ($0.10 Ctvs. por galón)", PerUnit: true},
	"C5": {Code: "C5", Description: "Impuesto ad-valorem por diferencial de precios de bebidas alcohólicas (8%)", Rate: decimal.RequireFromString("0.08")},
	"C6": {Code: "C6", Description: "Impuesto ad-valorem por diferencial de precios al tabaco cigarrillos (39%)", Rate: decimal.RequireFromString("0.39")},
	"C7": {Code: "C7", Description: "Impuesto ad-valorem por diferencial de precios al tabaco cigarros (100%)", Rate: decimal.NewFromInt(1)},
	"D4": {Code: "D4", Description: "Otros impuestos casos especiales", Rate: decimal.Zero},
	"D5": {Code: "D5", Description: "Otras tasas casos especiales", Rate: decimal.Zero},
}

// LookupTax devuelve el tributo del catálogo o el valor cero si no existe.
func LookupTax(code string) Tax {
	return taxes[strings.ToUpper(strings.TrimSpace(code))]
}

// =============================================================================
// CAT-017 Forma de pago
// =============================================================================

const (
	PagoEfectivo       = "01" // Billetes y monedas
	PagoTarjetaDebito  = "02"
	PagoTarjetaCredito = "03"
	PagoCheque         = "04"
	PagoTransferencia  = "05" // Transferencia / depósito bancario
	PagoDineroElectr   = "08"
	PagoBitcoin        = "11"
	PagoCuentaPorPagar = "13" // Cuentas por pagar del receptor
	PagoOtros          = "99"
)

var paymentMethods = map[string]string{
	"cash":            PagoEfectivo,
	"efectivo":        PagoEfectivo,
	"debit_card":      PagoTarjetaDebito,
	"tarjeta_debito":  PagoTarjetaDebito,
	"credit_card":     PagoTarjetaCredito,
	"tarjeta_credito": PagoTarjetaCredito,
	"card":            PagoTarjetaCredito,
	"check":           PagoCheque,
	"cheque":          PagoCheque,
	"transfer":        PagoTransferencia,
	"transferencia":   PagoTransferencia,
	"deposito":        PagoTransferencia,
	"e_money":         PagoDineroElectr,
	"bitcoin":         PagoBitcoin,
	"btc":             PagoBitcoin,
	"credit":          PagoCuentaPorPagar,
	"credito":         PagoCuentaPorPagar,
}

var paymentCodes = map[string]bool{
	"01": true, "02": true, "03": true, "04": true, "05": true, "08": true,
	"09": true, "11": true, "12": true, "13": true, "14": true, "99": true,
}

// PaymentMethodCode traduce el código interno de forma de pago al código CAT-017.
// Un código CAT-017 válido se acepta tal cual; cualquier otro valor cae en "99".
func PaymentMethodCode(internal string) string {
	k := strings.ToLower(strings.TrimSpace(internal))
	if paymentCodes[k] {
		return k
	}
	if code, ok := paymentMethods[k]; ok {
		return code
	}
	return PagoOtros
}

// =============================================================================
// CAT-022 Tipo de documento de identificación del receptor
// =============================================================================

const (
	DocNIT       = "36"
	DocDUI       = "13"
	DocOtro      = "37"
	DocPasaporte = "03"
	DocResidente = "02"
)

var identificationTypes = map[string]string{
	DocNIT:       "NIT",
	DocDUI:       "DUI",
	DocOtro:      "Otro",
	DocPasaporte: "Pasaporte",
	DocResidente: "Carnet de Residente",
}

// IdentificationTypeName devuelve el nombre del tipo de documento o "" si no existe.
func IdentificationTypeName(code string) string {
	return identificationTypes[code]
}

// InferIdentificationType deduce el tipo de documento por la cantidad de dígitos:
// 14 dígitos → NIT, 9 dígitos → DUI, cualquier otro → Otro.
func InferIdentificationType(doc string) string {
	switch len(DigitsOnly(doc)) {
	case 14:
		return DocNIT
	case 9:
		return DocDUI
	default:
		return DocOtro
	}
}

// =============================================================================
// CAT-012 Departamentos / CAT-013 Municipios
// =============================================================================

// DefaultDepartment y DefaultMunicipality corresponden a San Salvador, San Salvador.
const (
	DefaultDepartment   = "06"
	DefaultMunicipality = "14"
)

// Municipality entrada del catálogo CAT-013.
type Municipality struct {
	Code string `json:"codigo"`
	Name string `json:"nombre"`
}

// DepartmentName devuelve el nombre del departamento o "" si no existe.
func DepartmentName(code string) string {
	d, ok := departments[code]
	if !ok {
		return ""
	}
	return d.name
}

// Departments lista los códigos de departamento ordenados.
func Departments() []string {
	out := make([]string, 0, len(departments))
	for code := range departments {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Municipalities devuelve los municipios válidos de un departamento.
// Un departamento desconocido produce una lista vacía.
func Municipalities(dept string) []Municipality {
	d, ok := departments[dept]
	if !ok {
		return []Municipality{}
	}
	out := make([]Municipality, len(d.municipalities))
	for i, name := range d.municipalities {
		out[i] = Municipality{Code: twoDigits(i + 1), Name: name}
	}
	return out
}

// MunicipalityName devuelve el nombre del municipio dentro del departamento, o "".
func MunicipalityName(dept, mun string) string {
	d, ok := departments[dept]
	if !ok {
		return ""
	}
	idx := indexFromCode(mun)
	if idx < 0 || idx >= len(d.municipalities) {
		return ""
	}
	return d.municipalities[idx]
}

// ValidMunicipality informa si el municipio pertenece al departamento.
func ValidMunicipality(dept, mun string) bool {
	return MunicipalityName(dept, mun) != ""
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func indexFromCode(code string) int {
	if len(code) != 2 || code[0] < '0' || code[0] > '9' || code[1] < '0' || code[1] > '9' {
		return -1
	}
	return int(code[0]-'0')*10 + int(code[1]-'0') - 1
}
