package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	appdte "github.com/jhoicas/facturacion-sv/internal/application/dte"
	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/pkg/config"
	"github.com/jhoicas/facturacion-sv/pkg/hacienda"
)

var previewPrior int64

var previewCmd = &cobra.Command{
	Use:   "preview <input.json>",
	Short: "Arma un documento fuera de línea y lo imprime como JSON",
	Long: `Arma el documento con el mismo motor que usa la API, sin base de datos.
El archivo de entrada contiene el tipo, el perfil del emisor y el cuerpo de la
solicitud de emisión:

  {"tipo": "01", "perfil": {...}, "documento": {"receptor": {...}, "items": [...]}}

El correlativo se calcula a partir de --prior (documentos previos del tipo).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return runPreview(f, cmd.OutOrStdout(), domaindte.Config{
			Ambiente:      cfg.DTE.Ambiente,
			CodEstable:    cfg.DTE.CodEstable,
			CodPuntoVenta: cfg.DTE.CodPuntoVenta,
			Location:      cfg.DTE.Location(),
		}, previewPrior)
	},
}

// previewFile formato del archivo de entrada.
type previewFile struct {
	Tipo      string                          `json:"tipo"`
	Perfil    dto.UpdateCompanyProfileRequest `json:"perfil"`
	Documento dto.IssueDTERequest             `json:"documento"`
}

func runPreview(r io.Reader, w io.Writer, cfg domaindte.Config, prior int64) error {
	var in previewFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return fmt.Errorf("leer entrada: %w", err)
	}
	doc, err := appdte.Preview(cfg, appdte.PreviewInput{
		Tipo:    in.Tipo,
		Profile: fiscalProfile(in.Perfil),
		Prior:   prior,
		Request: in.Documento,
	})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func fiscalProfile(p dto.UpdateCompanyProfileRequest) domaindte.FiscalProfile {
	activity := strings.TrimSpace(p.ActivityCode)
	estType := p.EstablishmentType
	if estType == "" {
		estType = hacienda.EstablecimientoPredeterminado
	}
	return domaindte.FiscalProfile{
		NIT:                 hacienda.NormalizeNIT(p.NIT),
		NRC:                 hacienda.NormalizeNRC(p.NRC),
		Name:                strings.TrimSpace(p.Name),
		TradeName:           strings.TrimSpace(p.TradeName),
		ActivityCode:        activity,
		ActivityDescription: hacienda.ActivityDescription(activity, p.ActivityDescription),
		EstablishmentType:   estType,
		Department:          p.Department,
		Municipality:        p.Municipality,
		AddressComplement:   strings.TrimSpace(p.Address),
		Phone:               strings.TrimSpace(p.Phone),
		Email:               strings.TrimSpace(p.Email),
	}
}

func init() {
	previewCmd.Flags().Int64Var(&previewPrior, "prior", 0, "documentos previos del tipo (el correlativo será prior+1)")
}
