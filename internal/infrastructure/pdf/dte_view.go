package pdf

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// dteView lectura tolerante del JSON firmable: cubre los bloques de los once tipos
// sin depender de la estructura concreta de cada uno.
type dteView struct {
	Identificacion struct {
		Ambiente         string `json:"ambiente"`
		TipoDte          string `json:"tipoDte"`
		NumeroControl    string `json:"numeroControl"`
		CodigoGeneracion string `json:"codigoGeneracion"`
		FecEmi           string `json:"fecEmi"`
		HorEmi           string `json:"horEmi"`
		TipoMoneda       string `json:"tipoMoneda"`
	} `json:"identificacion"`
	Emisor          *partyView  `json:"emisor"`
	Receptor        *partyView  `json:"receptor"`
	SujetoExcluido  *partyView  `json:"sujetoExcluido"`
	Donatario       *partyView  `json:"donatario"`
	Donante         *partyView  `json:"donante"`
	CuerpoDocumento []itemView  `json:"cuerpoDocumento"`
	Resumen         summaryView `json:"resumen"`
}

type partyView struct {
	Nombre        string `json:"nombre"`
	NIT           string `json:"nit"`
	NRC           string `json:"nrc"`
	NumDocumento  string `json:"numDocumento"`
	DescActividad string `json:"descActividad"`
	Complemento   string `json:"complemento"`
	NombrePais    string `json:"nombrePais"`
	Telefono      string `json:"telefono"`
	Correo        string `json:"correo"`
	Direccion     *struct {
		Complemento string `json:"complemento"`
	} `json:"direccion"`
}

type itemView struct {
	NumItem         int             `json:"numItem"`
	Cantidad        int             `json:"cantidad"`
	Descripcion     string          `json:"descripcion"`
	NumDocumento    string          `json:"numDocumento"`
	PrecioUni       decimal.Decimal `json:"precioUni"`
	ValorUni        decimal.Decimal `json:"valorUni"`
	MontoDescu      decimal.Decimal `json:"montoDescu"`
	VentaNoSuj      decimal.Decimal `json:"ventaNoSuj"`
	VentaExenta     decimal.Decimal `json:"ventaExenta"`
	VentaGravada    decimal.Decimal `json:"ventaGravada"`
	Compra          decimal.Decimal `json:"compra"`
	Valor           decimal.Decimal `json:"valor"`
	MontoSujetoGrav decimal.Decimal `json:"montoSujetoGrav"`
}

type summaryView struct {
	SubTotal            decimal.Decimal     `json:"subTotal"`
	SubTotalVentas      decimal.Decimal     `json:"subTotalVentas"`
	TotalDescu          decimal.Decimal     `json:"totalDescu"`
	TotalIva            decimal.NullDecimal `json:"totalIva"`
	IvaRete1            decimal.Decimal     `json:"ivaRete1"`
	ReteRenta           decimal.Decimal     `json:"reteRenta"`
	MontoTotalOperacion decimal.Decimal     `json:"montoTotalOperacion"`
	TotalPagar          decimal.Decimal     `json:"totalPagar"`
	TotalRetenido       decimal.Decimal     `json:"totalRetenido"`
	ValorTotal          decimal.Decimal     `json:"valorTotal"`
	TotalLetras         string              `json:"totalLetras"`
	Tributos            []struct {
		Codigo      string          `json:"codigo"`
		Descripcion string          `json:"descripcion"`
		Valor       decimal.Decimal `json:"valor"`
	} `json:"tributos"`
}

func parseView(raw []byte) (*dteView, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("pdf: el documento no tiene JSON")
	}
	var v dteView
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("pdf: leer documento: %w", err)
	}
	return &v, nil
}

// issuer quien emite el documento; en donaciones es el donatario.
func (v *dteView) issuer() *partyView {
	if v.Emisor != nil {
		return v.Emisor
	}
	if v.Donatario != nil {
		return v.Donatario
	}
	return &partyView{}
}

// counterparty la otra parte: receptor, sujeto excluido o donante.
func (v *dteView) counterparty() *partyView {
	for _, p := range []*partyView{v.Receptor, v.SujetoExcluido, v.Donante} {
		if p != nil {
			return p
		}
	}
	return &partyView{}
}

func (p *partyView) document() string {
	if p.NIT != "" {
		return p.NIT
	}
	return p.NumDocumento
}

func (p *partyView) address() string {
	if p.Direccion != nil && p.Direccion.Complemento != "" {
		return p.Direccion.Complemento
	}
	if p.NombrePais != "" && p.Complemento != "" {
		return p.Complemento + ", " + p.NombrePais
	}
	return p.Complemento
}

func (it itemView) unitPrice() decimal.Decimal {
	if !it.PrecioUni.IsZero() {
		return it.PrecioUni
	}
	return it.ValorUni
}

// lineTotal solo una familia de montos está presente según el tipo.
func (it itemView) lineTotal() decimal.Decimal {
	return it.VentaNoSuj.Add(it.VentaExenta).Add(it.VentaGravada).
		Add(it.Compra).Add(it.Valor).Add(it.MontoSujetoGrav)
}

func (s summaryView) subtotal() decimal.Decimal {
	if !s.SubTotal.IsZero() {
		return s.SubTotal
	}
	if !s.SubTotalVentas.IsZero() {
		return s.SubTotalVentas
	}
	return s.MontoTotalOperacion
}

func (s summaryView) vat() decimal.Decimal {
	if s.TotalIva.Valid {
		return s.TotalIva.Decimal
	}
	total := decimal.Zero
	for _, t := range s.Tributos {
		total = total.Add(t.Valor)
	}
	return total
}

func (s summaryView) grandTotal() decimal.Decimal {
	for _, d := range []decimal.Decimal{s.TotalPagar, s.ValorTotal, s.TotalRetenido, s.MontoTotalOperacion} {
		if !d.IsZero() {
			return d
		}
	}
	return decimal.Zero
}
