package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion-sv/pkg/hacienda"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Muestra la versión de catálogos y la tabla de departamentos y municipios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printCatalogs(cmd.OutOrStdout())
	},
}

func printCatalogs(w io.Writer) error {
	fmt.Fprintf(w, "Catálogos %s\n\n", hacienda.CatalogVersion)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEPTO\tNOMBRE\tMUNICIPIO\tNOMBRE")
	for _, dept := range hacienda.Departments() {
		for _, m := range hacienda.Municipalities(dept) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", dept, hacienda.DepartmentName(dept), m.Code, m.Name)
		}
	}
	return tw.Flush()
}
