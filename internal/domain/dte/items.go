package dte

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Categorías de retención para el comprobante de retención.
const (
	RetencionIVA1    = "iva_1"
	RetencionRenta10 = "renta_10"
	RetencionRenta5  = "renta_5"
)

var withholdingRates = map[string]decimal.Decimal{
	RetencionIVA1:    decimal.RequireFromString("0.01"),
	RetencionRenta10: decimal.RequireFromString("0.10"),
	RetencionRenta5:  decimal.RequireFromString("0.05"),
}

// WithholdingRate devuelve la tasa de la categoría y si existe.
func WithholdingRate(category string) (decimal.Decimal, bool) {
	r, ok := withholdingRates[category]
	return r, ok
}

func isIVACategory(category string) bool {
	return strings.HasPrefix(category, "iva_")
}

// LineItem línea de detalle tal como la envía el cliente.
// En el comprobante de retención Price es el monto sujeto a retención.
type LineItem struct {
	Description string          `json:"descripcion"`
	Quantity    int             `json:"cantidad,omitempty"`
	Price       decimal.Decimal `json:"precio"`
	Code        string          `json:"codigo,omitempty"`
	Kind        int             `json:"tipoItem,omitempty"`  // CAT-011; 0 = bienes
	Category    string          `json:"categoria,omitempty"` // retención: iva_1, renta_10, renta_5
	Exempt      bool            `json:"exento,omitempty"`
}

// ParseItems realiza el parseo estructural del payload de ítems.
// Cualquier falla devuelve ErrInvalidItems antes de ejecutar aritmética.
func ParseItems(raw []byte) ([]LineItem, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, ErrNoItems
	}
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrInvalidItems
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}
