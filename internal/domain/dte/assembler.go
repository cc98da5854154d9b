package dte

import (
	"strings"
	"time"

	"github.com/jhoicas/facturacion-sv/pkg/hacienda"
	"github.com/shopspring/decimal"
)

// DefaultPhone teléfono usado cuando el emisor o receptor no registra uno.
const DefaultPhone = "00000000"

// Config parámetros de entorno del armado; se inyecta explícitamente.
type Config struct {
	Ambiente      string         // "00" pruebas, "01" producción
	CodEstable    string         // establecimiento por defecto
	CodPuntoVenta string         // punto de venta por defecto
	Location      *time.Location // zona horaria de fecEmi/horEmi; nil = la del instante recibido
}

func (c Config) ambiente() string {
	if hacienda.ValidAmbiente(c.Ambiente) {
		return c.Ambiente
	}
	return hacienda.AmbientePruebas
}

// FiscalProfile perfil fiscal del contribuyente emisor (tenant).
type FiscalProfile struct {
	NIT                 string
	NRC                 string
	Name                string
	TradeName           string
	ActivityCode        string
	ActivityDescription string
	EstablishmentType   string
	Department          string
	Municipality        string
	AddressComplement   string
	Phone               string
	Email               string
}

// CheckProfile verifica la precondición de emisión: NIT y NRC registrados.
// Debe invocarse antes de Assemble.
func CheckProfile(p FiscalProfile) error {
	if strings.TrimSpace(p.NIT) == "" || strings.TrimSpace(p.NRC) == "" {
		return ErrIncompleteProfile
	}
	return nil
}

// Counterparty la otra parte del documento (cliente, donante, proveedor, ...).
type Counterparty struct {
	DocumentType        string // CAT-022; vacío = se infiere por dígitos
	DocumentNumber      string
	NIT                 string
	NRC                 string
	Name                string
	TradeName           string
	ActivityCode        string
	ActivityDescription string
	Department          string
	Municipality        string
	AddressComplement   string
	Phone               string
	Email               string
	CountryCode         string // receptor extranjero (CAT-020)
	CountryName         string
	PersonType          int // CAT-029
}

// Establishment códigos de establecimiento y punto de venta del emisor.
type Establishment struct {
	CodEstable      string
	CodPuntoVenta   string
	CodEstableMH    string
	CodPuntoVentaMH string
}

// Payment condición y forma de pago.
type Payment struct {
	Method    string // código interno o CAT-017
	Reference string
	Condition int // CAT-016; 0 = contado
	Term      string
	Period    int
}

// RelatedDocument documento al que se refiere una nota de crédito o débito.
type RelatedDocument struct {
	Type           DocumentType
	GenerationType int // 1 físico, 2 electrónico
	Number         string
	IssuedAt       time.Time
}

// AssembleInput todo lo necesario para armar un DTE.
type AssembleInput struct {
	Type          DocumentType
	Profile       FiscalProfile
	Counterparty  Counterparty
	Totals        *DocumentTotals
	Sequence      SequenceIdentifier
	IssuedAt      time.Time
	Establishment Establishment
	Payment       Payment
	Related       []RelatedDocument
	Extension     *Extension
	Appendix      []Apendice
	Observations  string
	BienTitulo    string // nota de remisión (CAT-025)
}

// Assemble compone la estructura del DTE. No consulta persistencia; la
// validación del perfil fiscal (CheckProfile) es responsabilidad de quien llama.
func Assemble(cfg Config, in AssembleInput) (Document, error) {
	if !in.Type.Valid() {
		return nil, invalid("tipoDte", "tipo de documento no soportado")
	}
	if in.Totals == nil || len(in.Totals.Lines) == 0 {
		return nil, ErrNoItems
	}
	if in.Totals.Type != in.Type {
		return nil, invalid("tipoDte", "los totales no corresponden al tipo de documento")
	}
	if in.Sequence.NumeroControl == "" || in.Sequence.CodigoGeneracion == "" {
		return nil, invalid("identificacion", "número de control y código de generación son obligatorios")
	}
	if err := validateCounterparty(in.Type, in.Counterparty); err != nil {
		return nil, err
	}
	if in.Type.RequiresRelatedDocument() && len(in.Related) == 0 {
		return nil, invalid("documentoRelacionado", "debe indicar el documento que se ajusta")
	}

	b := builder{cfg: cfg, in: in, t: in.Totals}
	switch in.Type {
	case Factura:
		return b.factura(), nil
	case CreditoFiscal:
		return b.creditoFiscal(), nil
	case NotaRemision:
		return b.notaRemision(), nil
	case NotaCredito, NotaDebito:
		return b.notaAjuste(), nil
	case ComprobanteRetencion:
		return b.retencion(), nil
	case ComprobanteLiquidacion:
		return b.liquidacion(), nil
	case DocumentoContableLiquidacion:
		return b.contableLiquidacion(), nil
	case FacturaExportacion:
		return b.exportacion(), nil
	case FacturaSujetoExcluido:
		return b.sujetoExcluidoDoc(), nil
	default:
		return b.donacion(), nil
	}
}

func validateCounterparty(t DocumentType, c Counterparty) error {
	name := strings.TrimSpace(c.Name)
	switch {
	case t == Factura:
		return nil
	case t.RequiresTaxpayerReceiver():
		if name == "" || strings.TrimSpace(c.NIT) == "" || strings.TrimSpace(c.NRC) == "" {
			return invalid("receptor", "nombre, NIT y NRC del receptor son obligatorios")
		}
		if strings.TrimSpace(c.ActivityCode) == "" && strings.TrimSpace(c.ActivityDescription) == "" {
			return invalid("receptor", "la actividad económica del receptor es obligatoria")
		}
	case t == FacturaExportacion:
		if name == "" || strings.TrimSpace(c.CountryCode) == "" || strings.TrimSpace(c.DocumentNumber) == "" {
			return invalid("receptor", "nombre, documento y país del receptor son obligatorios")
		}
	default:
		if name == "" || strings.TrimSpace(counterpartyDocument(c)) == "" {
			return invalid(counterpartyBlock(t), "nombre y número de documento son obligatorios")
		}
	}
	return nil
}

// counterpartyBlock nombre del bloque de la contraparte según el tipo.
func counterpartyBlock(t DocumentType) string {
	switch t {
	case FacturaSujetoExcluido, DocumentoContableLiquidacion:
		return "sujetoExcluido"
	case ComprobanteDonacion:
		return "donante"
	}
	return "receptor"
}

func counterpartyDocument(c Counterparty) string {
	if c.DocumentNumber != "" {
		return c.DocumentNumber
	}
	return c.NIT
}

// ── builder ───────────────────────────────────────────────────────────────────

type builder struct {
	cfg Config
	in  AssembleInput
	t   *DocumentTotals
}

func (b builder) identificacion() Identificacion {
	at := b.in.IssuedAt
	if b.cfg.Location != nil {
		at = at.In(b.cfg.Location)
	}
	return Identificacion{
		Version:          b.in.Type.Version(),
		Ambiente:         b.cfg.ambiente(),
		TipoDte:          b.in.Type.Code(),
		NumeroControl:    b.in.Sequence.NumeroControl,
		CodigoGeneracion: b.in.Sequence.CodigoGeneracion,
		TipoModelo:       hacienda.ModeloPrevio,
		TipoOperacion:    hacienda.TransmisionNormal,
		FecEmi:           at.Format("2006-01-02"),
		HorEmi:           at.Format("15:04:05"),
		TipoMoneda:       "USD",
	}
}

func (b builder) emisor() Emisor {
	p := b.in.Profile
	return Emisor{
		NIT:           hacienda.NormalizeNIT(p.NIT),
		NRC:           hacienda.NormalizeNRC(p.NRC),
		Nombre:        p.Name,
		CodActividad:  activityCode(p.ActivityCode),
		DescActividad: hacienda.ActivityDescription(p.ActivityCode, p.ActivityDescription),
		Direccion:     direccion(p.Department, p.Municipality, p.AddressComplement),
		Telefono:      phone(p.Phone),
		Correo:        p.Email,
	}
}

func (b builder) emisorComercial() EmisorComercial {
	est := b.in.Profile.EstablishmentType
	if est == "" {
		est = hacienda.EstablecimientoPredeterminado
	}
	return EmisorComercial{
		Emisor:              b.emisor(),
		NombreComercial:     optional(b.in.Profile.TradeName),
		TipoEstablecimiento: est,
	}
}

func (b builder) puntoVenta() PuntoVenta {
	e := b.in.Establishment
	estable := e.CodEstable
	if estable == "" {
		estable = b.cfg.CodEstable
	}
	pos := e.CodPuntoVenta
	if pos == "" {
		pos = b.cfg.CodPuntoVenta
	}
	return PuntoVenta{
		CodEstableMH:    optional(e.CodEstableMH),
		CodEstable:      optional(padCode(estable, 4, DefaultCodEstable)),
		CodPuntoVentaMH: optional(e.CodPuntoVentaMH),
		CodPuntoVenta:   optional(padCode(pos, 3, DefaultCodPuntoVenta)),
	}
}

func (b builder) emisorEstablecimiento() EmisorEstablecimiento {
	return EmisorEstablecimiento{EmisorComercial: b.emisorComercial(), PuntoVenta: b.puntoVenta()}
}

func (b builder) emisorSucursal() EmisorSucursal {
	return EmisorSucursal{Emisor: b.emisor(), PuntoVenta: b.puntoVenta()}
}

func (b builder) receptorContribuyente() ReceptorContribuyente {
	c := b.in.Counterparty
	return ReceptorContribuyente{
		NIT:             hacienda.NormalizeNIT(c.NIT),
		NRC:             hacienda.NormalizeNRC(c.NRC),
		Nombre:          c.Name,
		CodActividad:    activityCode(c.ActivityCode),
		DescActividad:   hacienda.ActivityDescription(c.ActivityCode, c.ActivityDescription),
		NombreComercial: optional(c.TradeName),
		Direccion:       direccion(c.Department, c.Municipality, c.AddressComplement),
		Telefono:        optional(phone(c.Phone)),
		Correo:          c.Email,
	}
}

func (b builder) receptorDocumento() ReceptorDocumento {
	c := b.in.Counterparty
	tipo, num := identification(c)
	r := ReceptorDocumento{
		TipoDocumento:   tipo,
		NumDocumento:    num,
		NRC:             optional(hacienda.NormalizeNRC(c.NRC)),
		Nombre:          c.Name,
		NombreComercial: optional(c.TradeName),
		Direccion:       direccion(c.Department, c.Municipality, c.AddressComplement),
		Telefono:        optional(phone(c.Phone)),
		Correo:          c.Email,
	}
	if c.ActivityCode != "" || c.ActivityDescription != "" {
		r.CodActividad = optional(activityCode(c.ActivityCode))
		r.DescActividad = optional(hacienda.ActivityDescription(c.ActivityCode, c.ActivityDescription))
	}
	return r
}

func (b builder) sujetoExcluido() SujetoExcluido {
	c := b.in.Counterparty
	tipo, num := identification(c)
	s := SujetoExcluido{
		TipoDocumento: tipo,
		NumDocumento:  num,
		Nombre:        c.Name,
		Direccion:     direccion(c.Department, c.Municipality, c.AddressComplement),
		Telefono:      optional(phone(c.Phone)),
		Correo:        optional(c.Email),
	}
	if c.ActivityCode != "" || c.ActivityDescription != "" {
		s.CodActividad = optional(activityCode(c.ActivityCode))
		s.DescActividad = optional(hacienda.ActivityDescription(c.ActivityCode, c.ActivityDescription))
	}
	return s
}

func (b builder) relacionados() []DocumentoRelacionado {
	if len(b.in.Related) == 0 {
		return nil
	}
	out := make([]DocumentoRelacionado, len(b.in.Related))
	for i, r := range b.in.Related {
		gen := r.GenerationType
		if gen == 0 {
			gen = 2
		}
		out[i] = DocumentoRelacionado{
			TipoDocumento:   r.Type.Code(),
			TipoGeneracion:  gen,
			NumeroDocumento: r.Number,
			FechaEmision:    r.IssuedAt.Format("2006-01-02"),
		}
	}
	return out
}

func (b builder) pagos(total decimal.Decimal) []Pago {
	p := b.in.Payment
	pago := Pago{
		Codigo:     hacienda.PaymentMethodCode(p.Method),
		MontoPago:  NewAmount(total),
		Referencia: optional(p.Reference),
		Plazo:      optional(p.Term),
	}
	if p.Period > 0 {
		period := p.Period
		pago.Periodo = &period
	}
	return []Pago{pago}
}

func (b builder) condicion() int {
	if b.in.Payment.Condition == 0 {
		return hacienda.CondicionContado
	}
	return b.in.Payment.Condition
}

func (b builder) ivaTributos() []Tributo {
	if b.t.Tax.IsZero() && b.t.Taxable.IsZero() {
		return nil
	}
	iva := hacienda.LookupTax(hacienda.TaxIVA)
	return []Tributo{{Codigo: iva.Code, Descripcion: iva.Description, Valor: NewAmount(b.t.Tax)}}
}

// itemVenta línea común; related asocia el ítem al primer documento relacionado.
func (b builder) itemVenta(l LineTotals, withTributo bool) ItemVenta {
	it := ItemVenta{
		NumItem:      l.Number,
		TipoItem:     l.Item.Kind,
		Cantidad:     l.Item.Quantity,
		Codigo:       optional(l.Item.Code),
		UniMedida:    unidadMedida(l.Item.Kind),
		Descripcion:  l.Item.Description,
		PrecioUni:    NewAmount(l.Item.Price),
		VentaExenta:  NewAmount(l.Exempt),
		VentaGravada: NewAmount(l.Taxable),
	}
	if withTributo && l.Taxable.IsPositive() {
		it.Tributos = []string{hacienda.TaxIVA}
	}
	if len(b.in.Related) > 0 {
		it.NumeroDocumento = optional(b.in.Related[0].Number)
	}
	return it
}

func (b builder) resumenVenta(tributos []Tributo) ResumenVenta {
	sub := b.t.Gross
	return ResumenVenta{
		TotalExenta:         NewAmount(b.t.Exempt),
		TotalGravada:        NewAmount(b.t.Taxable),
		SubTotalVentas:      NewAmount(sub),
		Tributos:            tributos,
		SubTotal:            NewAmount(sub),
		MontoTotalOperacion: NewAmount(b.t.Total),
		TotalLetras:         b.t.Letters,
	}
}

func (b builder) resumenFactura(withTotalIva bool) ResumenFactura {
	r := ResumenFactura{
		ResumenVenta:       b.resumenVenta(b.ivaTributos()),
		TotalPagar:         NewAmount(b.t.Total),
		CondicionOperacion: b.condicion(),
		Pagos:              b.pagos(b.t.Total),
	}
	if withTotalIva {
		iva := NewAmount(b.t.Tax)
		r.TotalIva = &iva
	} else {
		zero := NewAmount(decimal.Zero)
		r.IvaPerci1 = &zero
	}
	return r
}

func (b builder) factura() *FacturaDocument {
	items := make([]ItemFactura, len(b.t.Lines))
	for i, l := range b.t.Lines {
		items[i] = ItemFactura{ItemVenta: b.itemVenta(l, true), IvaItem: NewAmount(l.IVA)}
	}
	return &FacturaDocument{
		Identificacion:       b.identificacion(),
		DocumentoRelacionado: b.relacionados(),
		Emisor:               b.emisorEstablecimiento(),
		Receptor:             b.receptorConsumidor(),
		CuerpoDocumento:      items,
		Resumen:              b.resumenFactura(true),
		Extension:            b.extension(),
		Apendice:             b.in.Appendix,
	}
}

func (b builder) receptorConsumidor() ReceptorConsumidor {
	c := b.in.Counterparty
	if strings.TrimSpace(c.Name) == "" {
		return ReceptorConsumidor{}
	}
	r := ReceptorConsumidor{
		Nombre:   optional(c.Name),
		NRC:      optional(hacienda.NormalizeNRC(c.NRC)),
		Telefono: optional(phone(c.Phone)),
		Correo:   optional(c.Email),
	}
	if doc := counterpartyDocument(c); doc != "" {
		tipo, num := identification(c)
		r.TipoDocumento, r.NumDocumento = &tipo, &num
	}
	if c.ActivityCode != "" || c.ActivityDescription != "" {
		r.CodActividad = optional(activityCode(c.ActivityCode))
		r.DescActividad = optional(hacienda.ActivityDescription(c.ActivityCode, c.ActivityDescription))
	}
	dir := direccion(c.Department, c.Municipality, c.AddressComplement)
	r.Direccion = &dir
	return r
}

func (b builder) creditoFiscal() *CreditoFiscalDocument {
	items := make([]ItemCreditoFiscal, len(b.t.Lines))
	for i, l := range b.t.Lines {
		items[i] = ItemCreditoFiscal{ItemVenta: b.itemVenta(l, true)}
	}
	return &CreditoFiscalDocument{
		Identificacion:       b.identificacion(),
		DocumentoRelacionado: b.relacionados(),
		Emisor:               b.emisorEstablecimiento(),
		Receptor:             b.receptorContribuyente(),
		CuerpoDocumento:      items,
		Resumen:              b.resumenFactura(false),
		Extension:            b.extension(),
		Apendice:             b.in.Appendix,
	}
}

func (b builder) notaRemision() *NotaRemisionDocument {
	items := make([]ItemVenta, len(b.t.Lines))
	for i, l := range b.t.Lines {
		items[i] = b.itemVenta(l, false)
	}
	titulo := b.in.BienTitulo
	if titulo == "" {
		titulo = hacienda.TituloTraslado
	}
	return &NotaRemisionDocument{
		Identificacion:       b.identificacion(),
		DocumentoRelacionado: b.relacionados(),
		Emisor:               b.emisorEstablecimiento(),
		Receptor:             ReceptorRemision{ReceptorDocumento: b.receptorDocumento(), BienTitulo: titulo},
		CuerpoDocumento:      items,
		Resumen:              b.resumenVenta(nil),
		Extension:            b.extension(),
		Apendice:             b.in.Appendix,
	}
}

func (b builder) notaAjuste() *NotaAjusteDocument {
	items := make([]ItemVenta, len(b.t.Lines))
	for i, l := range b.t.Lines {
		items[i] = b.itemVenta(l, true)
	}
	return &NotaAjusteDocument{
		Identificacion:       b.identificacion(),
		DocumentoRelacionado: b.relacionados(),
		Emisor:               b.emisorComercial(),
		Receptor:             b.receptorContribuyente(),
		CuerpoDocumento:      items,
		Resumen: ResumenAjuste{
			ResumenVenta:       b.resumenVenta(b.ivaTributos()),
			CondicionOperacion: b.condicion(),
		},
		Extension: b.extension(),
		Apendice:  b.in.Appendix,
	}
}

func (b builder) retencion() *RetencionDocument {
	fecha := b.identificacion().FecEmi
	items := make([]ItemRetencion, len(b.t.Lines))
	for i, l := range b.t.Lines {
		tipoDoc := 1
		if len(l.Item.Code) == 36 {
			tipoDoc = 2 // el documento retenido es un DTE (código de generación)
		}
		var ivaW, rentaW decimal.Decimal
		if isIVACategory(l.Item.Category) {
			ivaW = l.Withheld
		} else {
			rentaW = l.Withheld
		}
		items[i] = ItemRetencion{
			NumItem:           l.Number,
			TipoDte:           Factura.Code(),
			TipoDoc:           tipoDoc,
			NumDocumento:      l.Item.Code,
			FechaEmision:      fecha,
			MontoSujetoGrav:   NewAmount(l.Amount),
			CodigoRetencionMH: retentionCode(l.Item.Category),
			IvaRetenido:       NewAmount(ivaW),
			RentaRetenida:     NewAmount(rentaW),
			Descripcion:       l.Item.Description,
			Categoria:         l.Item.Category,
		}
	}
	return &RetencionDocument{
		Identificacion:  b.identificacion(),
		Emisor:          b.emisorEstablecimiento(),
		Receptor:        b.receptorDocumento(),
		CuerpoDocumento: items,
		Resumen: ResumenRetencion{
			TotalSujetoRetencion:   NewAmount(b.t.Gross),
			TotalIVAretenido:       NewAmount(b.t.IVAWithheld),
			TotalIVAretenidoLetras: AmountToWords(b.t.IVAWithheld),
			TotalRentaRetenida:     NewAmount(b.t.RentaWithheld),
			TotalRetenido:          NewAmount(b.t.Withheld),
			TotalLetras:            b.t.Letters,
		},
		Extension: b.extension(),
		Apendice:  b.in.Appendix,
	}
}

func (b builder) itemsLiquidacion() []ItemLiquidacion {
	items := make([]ItemLiquidacion, len(b.t.Lines))
	for i, l := range b.t.Lines {
		items[i] = ItemLiquidacion{
			NumItem:         l.Number,
			NumeroDocumento: optional(l.Item.Code),
			Descripcion:     l.Item.Description,
			Cantidad:        l.Item.Quantity,
			PrecioUni:       NewAmount(l.Item.Price),
			Valor:           NewAmount(l.Amount),
			Comision:        NewAmount(l.Commission),
			PorcentComision: NewAmount(b.t.CommissionPercent),
		}
	}
	return items
}

func (b builder) resumenLiquidacion() ResumenLiquidacion {
	return ResumenLiquidacion{
		ValorOperaciones:   NewAmount(b.t.Gross),
		Deducciones:        NewAmount(b.t.Deductions),
		Comision:           NewAmount(b.t.Commission),
		PorcentComision:    NewAmount(b.t.CommissionPercent),
		LiquidoPagar:       NewAmount(b.t.Net),
		TotalLetras:        b.t.Letters,
		CondicionOperacion: b.condicion(),
	}
}

func (b builder) liquidacion() *LiquidacionDocument {
	return &LiquidacionDocument{
		Identificacion:  b.identificacion(),
		Emisor:          b.emisorEstablecimiento(),
		Receptor:        b.receptorContribuyente(),
		CuerpoDocumento: b.itemsLiquidacion(),
		Resumen:         b.resumenLiquidacion(),
		Extension:       b.extension(),
		Apendice:        b.in.Appendix,
	}
}

func (b builder) contableLiquidacion() *ContableLiquidacionDocument {
	return &ContableLiquidacionDocument{
		Identificacion:  b.identificacion(),
		Emisor:          b.emisorSucursal(),
		SujetoExcluido:  b.sujetoExcluido(),
		CuerpoDocumento: b.itemsLiquidacion(),
		Resumen:         b.resumenLiquidacion(),
		Extension:       b.extension(),
		Apendice:        b.in.Appendix,
	}
}

func (b builder) exportacion() *ExportacionDocument {
	c := b.in.Counterparty
	items := make([]ItemExportacion, len(b.t.Lines))
	for i, l := range b.t.Lines {
		items[i] = ItemExportacion{
			NumItem:      l.Number,
			Cantidad:     l.Item.Quantity,
			Codigo:       optional(l.Item.Code),
			UniMedida:    unidadMedida(l.Item.Kind),
			Descripcion:  l.Item.Description,
			PrecioUni:    NewAmount(l.Item.Price),
			VentaGravada: NewAmount(l.Amount),
		}
	}
	tipoPersona := c.PersonType
	if tipoPersona == 0 {
		tipoPersona = hacienda.PersonaJuridica
	}
	tipoDoc := c.DocumentType
	if tipoDoc == "" {
		tipoDoc = hacienda.DocOtro
	}
	complemento := strings.TrimSpace(c.AddressComplement)
	if complemento == "" {
		complemento = c.CountryName
	}
	return &ExportacionDocument{
		Identificacion: b.identificacion(),
		Emisor:         b.emisorEstablecimiento(),
		Receptor: ReceptorExportacion{
			Nombre:          c.Name,
			TipoDocumento:   tipoDoc,
			NumDocumento:    c.DocumentNumber,
			NombreComercial: optional(c.TradeName),
			CodPais:         c.CountryCode,
			NombrePais:      c.CountryName,
			Complemento:     complemento,
			TipoPersona:     tipoPersona,
			DescActividad:   optional(c.ActivityDescription),
			Telefono:        optional(c.Phone),
			Correo:          optional(c.Email),
		},
		CuerpoDocumento: items,
		Resumen: ResumenExportacion{
			TotalGravada:        NewAmount(b.t.Gross),
			MontoTotalOperacion: NewAmount(b.t.Total),
			TotalPagar:          NewAmount(b.t.Total),
			TotalLetras:         b.t.Letters,
			CondicionOperacion:  b.condicion(),
			Pagos:               b.pagos(b.t.Total),
			Observaciones:       optional(b.in.Observations),
		},
		Apendice: b.in.Appendix,
	}
}

func (b builder) sujetoExcluidoDoc() *SujetoExcluidoDocument {
	items := make([]ItemSujetoExcluido, len(b.t.Lines))
	for i, l := range b.t.Lines {
		items[i] = ItemSujetoExcluido{
			NumItem:     l.Number,
			TipoItem:    l.Item.Kind,
			Cantidad:    l.Item.Quantity,
			Codigo:      optional(l.Item.Code),
			UniMedida:   unidadMedida(l.Item.Kind),
			Descripcion: l.Item.Description,
			PrecioUni:   NewAmount(l.Item.Price),
			Compra:      NewAmount(l.Amount),
		}
	}
	return &SujetoExcluidoDocument{
		Identificacion:  b.identificacion(),
		Emisor:          b.emisorSucursal(),
		SujetoExcluido:  b.sujetoExcluido(),
		CuerpoDocumento: items,
		Resumen: ResumenSujetoExcluido{
			TotalCompra:        NewAmount(b.t.Gross),
			SubTotal:           NewAmount(b.t.Gross),
			TotalPagar:         NewAmount(b.t.Total),
			TotalLetras:        b.t.Letters,
			CondicionOperacion: b.condicion(),
			Pagos:              b.pagos(b.t.Total),
			Observaciones:      optional(b.in.Observations),
		},
		Apendice: b.in.Appendix,
	}
}

func (b builder) donacion() *DonacionDocument {
	p := b.in.Profile
	c := b.in.Counterparty
	items := make([]ItemDonacion, len(b.t.Lines))
	for i, l := range b.t.Lines {
		tipo := 2 // bien
		switch l.Item.Kind {
		case hacienda.TipoItemServicios:
			tipo = 3
		case hacienda.TipoItemTributo:
			tipo = 1 // efectivo
		}
		items[i] = ItemDonacion{
			NumItem:      l.Number,
			TipoDonacion: tipo,
			Cantidad:     l.Item.Quantity,
			Codigo:       optional(l.Item.Code),
			UniMedida:    unidadMedida(l.Item.Kind),
			Descripcion:  l.Item.Description,
			ValorUni:     NewAmount(l.Item.Price),
			Valor:        NewAmount(l.Amount),
		}
	}
	em := b.emisorComercial()
	tipo, num := identification(c)
	donante := Donante{
		TipoDocumento:  tipo,
		NumDocumento:   num,
		NRC:            optional(hacienda.NormalizeNRC(c.NRC)),
		Nombre:         c.Name,
		Telefono:       optional(phone(c.Phone)),
		Correo:         optional(c.Email),
		CodDomiciliado: 1,
		CodPais:        "9300",
	}
	if c.CountryCode != "" {
		donante.CodDomiciliado = 2
		donante.CodPais = c.CountryCode
	} else {
		dir := direccion(c.Department, c.Municipality, c.AddressComplement)
		donante.Direccion = &dir
	}
	if c.ActivityCode != "" || c.ActivityDescription != "" {
		donante.CodActividad = optional(activityCode(c.ActivityCode))
		donante.DescActividad = optional(hacienda.ActivityDescription(c.ActivityCode, c.ActivityDescription))
	}
	return &DonacionDocument{
		Identificacion: b.identificacion(),
		Donatario: Donatario{
			TipoDocumento:       hacienda.DocNIT,
			NumDocumento:        em.NIT,
			NRC:                 em.NRC,
			Nombre:              p.Name,
			CodActividad:        em.CodActividad,
			DescActividad:       em.DescActividad,
			NombreComercial:     em.NombreComercial,
			TipoEstablecimiento: em.TipoEstablecimiento,
			Direccion:           em.Direccion,
			Telefono:            em.Telefono,
			Correo:              em.Correo,
			PuntoVenta:          b.puntoVenta(),
		},
		Donante:         donante,
		CuerpoDocumento: items,
		Resumen: ResumenDonacion{
			ValorTotal:  NewAmount(b.t.Total),
			TotalLetras: b.t.Letters,
			Pagos:       b.pagos(b.t.Total),
		},
		Apendice: b.in.Appendix,
	}
}

func (b builder) extension() *Extension {
	if b.in.Extension != nil {
		return b.in.Extension
	}
	if b.in.Observations == "" {
		return nil
	}
	return &Extension{Observaciones: optional(b.in.Observations)}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func direccion(dept, mun, complemento string) Direccion {
	if dept == "" {
		dept = hacienda.DefaultDepartment
	}
	if mun == "" {
		mun = hacienda.DefaultMunicipality
	}
	complemento = strings.TrimSpace(complemento)
	if complemento == "" {
		complemento = strings.Trim(hacienda.MunicipalityName(dept, mun)+", "+hacienda.DepartmentName(dept), ", ")
	}
	return Direccion{Departamento: dept, Municipio: mun, Complemento: complemento}
}

func phone(p string) string {
	if strings.TrimSpace(p) == "" {
		return DefaultPhone
	}
	return p
}

func activityCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return hacienda.DefaultActivityCode
	}
	return code
}

func identification(c Counterparty) (tipo, num string) {
	num = counterpartyDocument(c)
	tipo = c.DocumentType
	if tipo == "" {
		tipo = hacienda.InferIdentificationType(num)
	}
	if tipo == hacienda.DocNIT || tipo == hacienda.DocDUI {
		num = hacienda.DigitsOnly(num)
	}
	return tipo, num
}

func unidadMedida(kind int) int {
	if kind == hacienda.TipoItemServicios {
		return hacienda.UnidadMedidaOtra
	}
	return hacienda.UnidadMedidaUnidad
}

// retentionCode CAT-006 solo cataloga retenciones de IVA; la renta no lleva código.
func retentionCode(category string) string {
	switch {
	case category == RetencionIVA1:
		return hacienda.RetencionIVA1
	case isIVACategory(category):
		return hacienda.RetencionEspecial
	default:
		return ""
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
