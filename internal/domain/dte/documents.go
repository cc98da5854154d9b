package dte

// Document es el DTE armado. Cada tipo tiene su propia estructura; el conjunto
// de implementaciones es cerrado a este paquete.
type Document interface {
	Type() DocumentType
	Ident() *Identificacion
	TotalLetras() string
	sealed()
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

// ItemVenta línea de venta con desglose gravado/exento (FE, CCF, NR, NC, ND).
type ItemVenta struct {
	NumItem         int      `json:"numItem"`
	TipoItem        int      `json:"tipoItem"`
	NumeroDocumento *string  `json:"numeroDocumento"`
	Cantidad        int      `json:"cantidad"`
	Codigo          *string  `json:"codigo"`
	CodTributo      *string  `json:"codTributo"`
	UniMedida       int      `json:"uniMedida"`
	Descripcion     string   `json:"descripcion"`
	PrecioUni       Amount   `json:"precioUni"`
	MontoDescu      Amount   `json:"montoDescu"`
	VentaNoSuj      Amount   `json:"ventaNoSuj"`
	VentaExenta     Amount   `json:"ventaExenta"`
	VentaGravada    Amount   `json:"ventaGravada"`
	Tributos        []string `json:"tributos"`
}

// ItemFactura agrega el IVA informativo por ítem.
type ItemFactura struct {
	ItemVenta
	Psv       Amount `json:"psv"`
	NoGravado Amount `json:"noGravado"`
	IvaItem   Amount `json:"ivaItem"`
}

// ItemCreditoFiscal agrega precio sugerido y no gravado.
type ItemCreditoFiscal struct {
	ItemVenta
	Psv       Amount `json:"psv"`
	NoGravado Amount `json:"noGravado"`
}

// ItemRetencion línea del comprobante de retención.
type ItemRetencion struct {
	NumItem           int    `json:"numItem"`
	TipoDte           string `json:"tipoDte"`
	TipoDoc           int    `json:"tipoDoc"`
	NumDocumento      string `json:"numDocumento"`
	FechaEmision      string `json:"fechaEmision"`
	MontoSujetoGrav   Amount `json:"montoSujetoGrav"`
	CodigoRetencionMH string `json:"codigoRetencionMH,omitempty"` // CAT-006; vacío en retención de renta
	IvaRetenido       Amount `json:"ivaRetenido"`
	RentaRetenida     Amount `json:"rentaRetenida"`
	Descripcion       string `json:"descripcion"`
	Categoria         string `json:"categoria"`
}

// ItemLiquidacion línea de liquidación con comisión prorrateada (CL, DCL).
type ItemLiquidacion struct {
	NumItem         int     `json:"numItem"`
	NumeroDocumento *string `json:"numeroDocumento"`
	Descripcion     string  `json:"descripcion"`
	Cantidad        int     `json:"cantidad"`
	PrecioUni       Amount  `json:"precioUni"`
	Valor           Amount  `json:"valor"`
	Comision        Amount  `json:"comision"`
	PorcentComision Amount  `json:"porcentComision"`
}

// ItemExportacion línea de factura de exportación.
type ItemExportacion struct {
	NumItem      int      `json:"numItem"`
	Cantidad     int      `json:"cantidad"`
	Codigo       *string  `json:"codigo"`
	UniMedida    int      `json:"uniMedida"`
	Descripcion  string   `json:"descripcion"`
	PrecioUni    Amount   `json:"precioUni"`
	MontoDescu   Amount   `json:"montoDescu"`
	VentaGravada Amount   `json:"ventaGravada"`
	Tributos     []string `json:"tributos"`
	NoGravado    Amount   `json:"noGravado"`
}

// ItemSujetoExcluido línea de compra a sujeto excluido.
type ItemSujetoExcluido struct {
	NumItem     int     `json:"numItem"`
	TipoItem    int     `json:"tipoItem"`
	Cantidad    int     `json:"cantidad"`
	Codigo      *string `json:"codigo"`
	UniMedida   int     `json:"uniMedida"`
	Descripcion string  `json:"descripcion"`
	PrecioUni   Amount  `json:"precioUni"`
	MontoDescu  Amount  `json:"montoDescu"`
	Compra      Amount  `json:"compra"`
}

// ItemDonacion línea de donación.
type ItemDonacion struct {
	NumItem      int     `json:"numItem"`
	TipoDonacion int     `json:"tipoDonacion"`
	Cantidad     int     `json:"cantidad"`
	Codigo       *string `json:"codigo"`
	UniMedida    int     `json:"uniMedida"`
	Descripcion  string  `json:"descripcion"`
	Depreciacion Amount  `json:"depreciacion"`
	ValorUni     Amount  `json:"valorUni"`
	Valor        Amount  `json:"valor"`
}

// ── Resúmenes ─────────────────────────────────────────────────────────────────

// ResumenVenta totales comunes a documentos de venta.
type ResumenVenta struct {
	TotalNoSuj          Amount    `json:"totalNoSuj"`
	TotalExenta         Amount    `json:"totalExenta"`
	TotalGravada        Amount    `json:"totalGravada"`
	SubTotalVentas      Amount    `json:"subTotalVentas"`
	DescuNoSuj          Amount    `json:"descuNoSuj"`
	DescuExenta         Amount    `json:"descuExenta"`
	DescuGravada        Amount    `json:"descuGravada"`
	TotalDescu          Amount    `json:"totalDescu"`
	Tributos            []Tributo `json:"tributos"`
	SubTotal            Amount    `json:"subTotal"`
	MontoTotalOperacion Amount    `json:"montoTotalOperacion"`
	TotalLetras         string    `json:"totalLetras"`
}

// ResumenFactura resumen de FE y CCF.
type ResumenFactura struct {
	ResumenVenta
	PorcentajeDescuento Amount  `json:"porcentajeDescuento"`
	IvaRete1            Amount  `json:"ivaRete1"`
	ReteRenta           Amount  `json:"reteRenta"`
	TotalNoGravado      Amount  `json:"totalNoGravado"`
	TotalPagar          Amount  `json:"totalPagar"`
	TotalIva            *Amount `json:"totalIva,omitempty"`
	IvaPerci1           *Amount `json:"ivaPerci1,omitempty"`
	SaldoFavor          Amount  `json:"saldoFavor"`
	CondicionOperacion  int     `json:"condicionOperacion"`
	Pagos               []Pago  `json:"pagos"`
	NumPagoElectronico  *string `json:"numPagoElectronico"`
}

// ResumenAjuste resumen de NC y ND.
type ResumenAjuste struct {
	ResumenVenta
	IvaPerci1          Amount `json:"ivaPerci1"`
	IvaRete1           Amount `json:"ivaRete1"`
	ReteRenta          Amount `json:"reteRenta"`
	CondicionOperacion int    `json:"condicionOperacion"`
}

// ResumenRetencion resumen del comprobante de retención.
type ResumenRetencion struct {
	TotalSujetoRetencion   Amount `json:"totalSujetoRetencion"`
	TotalIVAretenido       Amount `json:"totalIVAretenido"`
	TotalIVAretenidoLetras string `json:"totalIVAretenidoLetras"`
	TotalRentaRetenida     Amount `json:"totalRentaRetenida"`
	TotalRetenido          Amount `json:"totalRetenido"`
	TotalLetras            string `json:"totalLetras"`
}

// ResumenLiquidacion resumen de CL y DCL.
type ResumenLiquidacion struct {
	ValorOperaciones   Amount `json:"valorOperaciones"`
	Deducciones        Amount `json:"deducciones"`
	Comision           Amount `json:"comision"`
	PorcentComision    Amount `json:"porcentComision"`
	LiquidoPagar       Amount `json:"liquidoPagar"`
	TotalLetras        string `json:"totalLetras"`
	CondicionOperacion int    `json:"condicionOperacion"`
}

// ResumenExportacion resumen de FEXE.
type ResumenExportacion struct {
	TotalGravada        Amount  `json:"totalGravada"`
	Descuento           Amount  `json:"descuento"`
	PorcentajeDescuento Amount  `json:"porcentajeDescuento"`
	TotalDescu          Amount  `json:"totalDescu"`
	Seguro              Amount  `json:"seguro"`
	Flete               Amount  `json:"flete"`
	MontoTotalOperacion Amount  `json:"montoTotalOperacion"`
	TotalNoGravado      Amount  `json:"totalNoGravado"`
	TotalPagar          Amount  `json:"totalPagar"`
	TotalLetras         string  `json:"totalLetras"`
	CondicionOperacion  int     `json:"condicionOperacion"`
	Pagos               []Pago  `json:"pagos"`
	CodIncoterms        *string `json:"codIncoterms"`
	DescIncoterms       *string `json:"descIncoterms"`
	Observaciones       *string `json:"observaciones"`
}

// ResumenSujetoExcluido resumen de FSE.
type ResumenSujetoExcluido struct {
	TotalCompra        Amount  `json:"totalCompra"`
	Descu              Amount  `json:"descu"`
	TotalDescu         Amount  `json:"totalDescu"`
	SubTotal           Amount  `json:"subTotal"`
	IvaRete1           Amount  `json:"ivaRete1"`
	ReteRenta          Amount  `json:"reteRenta"`
	TotalPagar         Amount  `json:"totalPagar"`
	TotalLetras        string  `json:"totalLetras"`
	CondicionOperacion int     `json:"condicionOperacion"`
	Pagos              []Pago  `json:"pagos"`
	Observaciones      *string `json:"observaciones"`
}

// ResumenDonacion resumen de CD.
type ResumenDonacion struct {
	ValorTotal  Amount `json:"valorTotal"`
	TotalLetras string `json:"totalLetras"`
	Pagos       []Pago `json:"pagos"`
}

// ── Documentos por tipo ───────────────────────────────────────────────────────

// FacturaDocument FE (01).
type FacturaDocument struct {
	Identificacion       Identificacion         `json:"identificacion"`
	DocumentoRelacionado []DocumentoRelacionado `json:"documentoRelacionado"`
	Emisor               EmisorEstablecimiento  `json:"emisor"`
	Receptor             ReceptorConsumidor     `json:"receptor"`
	CuerpoDocumento      []ItemFactura          `json:"cuerpoDocumento"`
	Resumen              ResumenFactura         `json:"resumen"`
	Extension            *Extension             `json:"extension"`
	Apendice             []Apendice             `json:"apendice"`
}

// CreditoFiscalDocument CCF (03).
type CreditoFiscalDocument struct {
	Identificacion       Identificacion         `json:"identificacion"`
	DocumentoRelacionado []DocumentoRelacionado `json:"documentoRelacionado"`
	Emisor               EmisorEstablecimiento  `json:"emisor"`
	Receptor             ReceptorContribuyente  `json:"receptor"`
	CuerpoDocumento      []ItemCreditoFiscal    `json:"cuerpoDocumento"`
	Resumen              ResumenFactura         `json:"resumen"`
	Extension            *Extension             `json:"extension"`
	Apendice             []Apendice             `json:"apendice"`
}

// NotaRemisionDocument NR (04).
type NotaRemisionDocument struct {
	Identificacion       Identificacion         `json:"identificacion"`
	DocumentoRelacionado []DocumentoRelacionado `json:"documentoRelacionado"`
	Emisor               EmisorEstablecimiento  `json:"emisor"`
	Receptor             ReceptorRemision       `json:"receptor"`
	CuerpoDocumento      []ItemVenta            `json:"cuerpoDocumento"`
	Resumen              ResumenVenta           `json:"resumen"`
	Extension            *Extension             `json:"extension"`
	Apendice             []Apendice             `json:"apendice"`
}

// NotaAjusteDocument NC (05) y ND (06) comparten estructura.
type NotaAjusteDocument struct {
	Identificacion       Identificacion         `json:"identificacion"`
	DocumentoRelacionado []DocumentoRelacionado `json:"documentoRelacionado"`
	Emisor               EmisorComercial        `json:"emisor"`
	Receptor             ReceptorContribuyente  `json:"receptor"`
	CuerpoDocumento      []ItemVenta            `json:"cuerpoDocumento"`
	Resumen              ResumenAjuste          `json:"resumen"`
	Extension            *Extension             `json:"extension"`
	Apendice             []Apendice             `json:"apendice"`
}

// RetencionDocument CR (07).
type RetencionDocument struct {
	Identificacion  Identificacion        `json:"identificacion"`
	Emisor          EmisorEstablecimiento `json:"emisor"`
	Receptor        ReceptorDocumento     `json:"receptor"`
	CuerpoDocumento []ItemRetencion       `json:"cuerpoDocumento"`
	Resumen         ResumenRetencion      `json:"resumen"`
	Extension       *Extension            `json:"extension"`
	Apendice        []Apendice            `json:"apendice"`
}

// LiquidacionDocument CL (08).
type LiquidacionDocument struct {
	Identificacion  Identificacion        `json:"identificacion"`
	Emisor          EmisorEstablecimiento `json:"emisor"`
	Receptor        ReceptorContribuyente `json:"receptor"`
	CuerpoDocumento []ItemLiquidacion     `json:"cuerpoDocumento"`
	Resumen         ResumenLiquidacion    `json:"resumen"`
	Extension       *Extension            `json:"extension"`
	Apendice        []Apendice            `json:"apendice"`
}

// ContableLiquidacionDocument DCL (09).
type ContableLiquidacionDocument struct {
	Identificacion  Identificacion     `json:"identificacion"`
	Emisor          EmisorSucursal     `json:"emisor"`
	SujetoExcluido  SujetoExcluido     `json:"sujetoExcluido"`
	CuerpoDocumento []ItemLiquidacion  `json:"cuerpoDocumento"`
	Resumen         ResumenLiquidacion `json:"resumen"`
	Extension       *Extension         `json:"extension"`
	Apendice        []Apendice         `json:"apendice"`
}

// ExportacionDocument FEXE (11).
type ExportacionDocument struct {
	Identificacion  Identificacion        `json:"identificacion"`
	Emisor          EmisorEstablecimiento `json:"emisor"`
	Receptor        ReceptorExportacion   `json:"receptor"`
	CuerpoDocumento []ItemExportacion     `json:"cuerpoDocumento"`
	Resumen         ResumenExportacion    `json:"resumen"`
	Apendice        []Apendice            `json:"apendice"`
}

// SujetoExcluidoDocument FSE (14).
type SujetoExcluidoDocument struct {
	Identificacion  Identificacion        `json:"identificacion"`
	Emisor          EmisorSucursal        `json:"emisor"`
	SujetoExcluido  SujetoExcluido        `json:"sujetoExcluido"`
	CuerpoDocumento []ItemSujetoExcluido  `json:"cuerpoDocumento"`
	Resumen         ResumenSujetoExcluido `json:"resumen"`
	Apendice        []Apendice            `json:"apendice"`
}

// DonacionDocument CD (15).
type DonacionDocument struct {
	Identificacion  Identificacion  `json:"identificacion"`
	Donatario       Donatario       `json:"donatario"`
	Donante         Donante         `json:"donante"`
	CuerpoDocumento []ItemDonacion  `json:"cuerpoDocumento"`
	Resumen         ResumenDonacion `json:"resumen"`
	Apendice        []Apendice      `json:"apendice"`
}

func (d *FacturaDocument) Type() DocumentType             { return Factura }
func (d *CreditoFiscalDocument) Type() DocumentType       { return CreditoFiscal }
func (d *NotaRemisionDocument) Type() DocumentType        { return NotaRemision }
func (d *RetencionDocument) Type() DocumentType           { return ComprobanteRetencion }
func (d *LiquidacionDocument) Type() DocumentType         { return ComprobanteLiquidacion }
func (d *ContableLiquidacionDocument) Type() DocumentType { return DocumentoContableLiquidacion }
func (d *ExportacionDocument) Type() DocumentType         { return FacturaExportacion }
func (d *SujetoExcluidoDocument) Type() DocumentType      { return FacturaSujetoExcluido }
func (d *DonacionDocument) Type() DocumentType            { return ComprobanteDonacion }

// Type distingue NC y ND por el tipoDte de la identificación.
func (d *NotaAjusteDocument) Type() DocumentType {
	if d.Identificacion.TipoDte == NotaDebito.Code() {
		return NotaDebito
	}
	return NotaCredito
}

func (d *FacturaDocument) Ident() *Identificacion             { return &d.Identificacion }
func (d *CreditoFiscalDocument) Ident() *Identificacion       { return &d.Identificacion }
func (d *NotaRemisionDocument) Ident() *Identificacion        { return &d.Identificacion }
func (d *NotaAjusteDocument) Ident() *Identificacion          { return &d.Identificacion }
func (d *RetencionDocument) Ident() *Identificacion           { return &d.Identificacion }
func (d *LiquidacionDocument) Ident() *Identificacion         { return &d.Identificacion }
func (d *ContableLiquidacionDocument) Ident() *Identificacion { return &d.Identificacion }
func (d *ExportacionDocument) Ident() *Identificacion         { return &d.Identificacion }
func (d *SujetoExcluidoDocument) Ident() *Identificacion      { return &d.Identificacion }
func (d *DonacionDocument) Ident() *Identificacion            { return &d.Identificacion }

func (d *FacturaDocument) TotalLetras() string             { return d.Resumen.TotalLetras }
func (d *CreditoFiscalDocument) TotalLetras() string       { return d.Resumen.TotalLetras }
func (d *NotaRemisionDocument) TotalLetras() string        { return d.Resumen.TotalLetras }
func (d *NotaAjusteDocument) TotalLetras() string          { return d.Resumen.TotalLetras }
func (d *RetencionDocument) TotalLetras() string           { return d.Resumen.TotalLetras }
func (d *LiquidacionDocument) TotalLetras() string         { return d.Resumen.TotalLetras }
func (d *ContableLiquidacionDocument) TotalLetras() string { return d.Resumen.TotalLetras }
func (d *ExportacionDocument) TotalLetras() string         { return d.Resumen.TotalLetras }
func (d *SujetoExcluidoDocument) TotalLetras() string      { return d.Resumen.TotalLetras }
func (d *DonacionDocument) TotalLetras() string            { return d.Resumen.TotalLetras }

func (*FacturaDocument) sealed()             {}
func (*CreditoFiscalDocument) sealed()       {}
func (*NotaRemisionDocument) sealed()        {}
func (*NotaAjusteDocument) sealed()          {}
func (*RetencionDocument) sealed()           {}
func (*LiquidacionDocument) sealed()         {}
func (*ContableLiquidacionDocument) sealed() {}
func (*ExportacionDocument) sealed()         {}
func (*SujetoExcluidoDocument) sealed()      {}
func (*DonacionDocument) sealed()            {}

// EmptyDocument devuelve una instancia vacía del tipo; útil para deserializar
// o para generar el JSON Schema.
func EmptyDocument(t DocumentType) Document {
	switch t {
	case Factura:
		return &FacturaDocument{}
	case CreditoFiscal:
		return &CreditoFiscalDocument{}
	case NotaRemision:
		return &NotaRemisionDocument{}
	case NotaCredito:
		return &NotaAjusteDocument{Identificacion: Identificacion{TipoDte: NotaCredito.Code()}}
	case NotaDebito:
		return &NotaAjusteDocument{Identificacion: Identificacion{TipoDte: NotaDebito.Code()}}
	case ComprobanteRetencion:
		return &RetencionDocument{}
	case ComprobanteLiquidacion:
		return &LiquidacionDocument{}
	case DocumentoContableLiquidacion:
		return &ContableLiquidacionDocument{}
	case FacturaExportacion:
		return &ExportacionDocument{}
	case FacturaSujetoExcluido:
		return &SujetoExcluidoDocument{}
	case ComprobanteDonacion:
		return &DonacionDocument{}
	}
	return nil
}
