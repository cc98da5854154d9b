package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion-sv/pkg/logger"
)

var version = "1.0.0"

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "dte",
	Short: "Herramientas del motor de documentos tributarios electrónicos",
	Long: `dte agrupa las tareas de operación del servicio de facturación electrónica:
aplicar migraciones, publicar el JSON Schema de cada tipo de documento,
armar un documento fuera de línea para revisarlo y consultar los catálogos
de Hacienda embebidos.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute corre el comando raíz y termina el proceso si falla.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cliLogger().Error().Err(err).Msg("comando fallido")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cliLogger escribe en stderr para no mezclar logs con la salida del comando.
func cliLogger() *logger.Logger {
	return logger.NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, logLevel)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "nivel de log (debug, info, warn, error)")
	rootCmd.AddCommand(migrateCmd, schemaCmd, previewCmd, catalogsCmd)
}
