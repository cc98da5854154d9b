package main

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <tipo>",
	Short: "Imprime el JSON Schema del documento (código 01..15 o abreviatura FE, CCF...)",
	Args:  cobra.ExactArgs(1),
	Example: `  dte schema 01
  dte schema ccf > ccf.schema.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, ok := domaindte.ParseDocumentType(args[0])
		if !ok {
			return fmt.Errorf("tipo de documento no soportado: %s", args[0])
		}
		out, err := json.MarshalIndent(documentSchema(t), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}

var amountType = reflect.TypeOf(domaindte.Amount{})

// documentSchema refleja la estructura que produce el armado para el tipo t.
// Los montos se serializan como número con dos decimales.
func documentSchema(t domaindte.DocumentType) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper: func(rt reflect.Type) *jsonschema.Schema {
			if rt == amountType {
				return &jsonschema.Schema{Type: "number"}
			}
			return nil
		},
	}
	s := reflector.Reflect(domaindte.EmptyDocument(t))
	s.Title = fmt.Sprintf("%s (%s) v%d", t.Name(), t.Code(), t.Version())
	return s
}
