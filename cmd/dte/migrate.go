package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"github.com/jhoicas/facturacion-sv/internal/infrastructure/postgres"
	"github.com/jhoicas/facturacion-sv/pkg/config"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|version]",
	Short:     "Aplica o revierte las migraciones embebidas",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down", "version"},
	Example: `  dte migrate up
  dte migrate version`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(cfg.DB)
	if err != nil {
		return err
	}
	defer m.Close()

	log := cliLogger()
	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		v, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			fmt.Fprintln(cmd.OutOrStdout(), "sin migraciones aplicadas")
			return nil
		}
		if verr != nil {
			return verr
		}
		fmt.Fprintf(cmd.OutOrStdout(), "versión %d (dirty=%t)\n", v, dirty)
		return nil
	default:
		return fmt.Errorf("acción desconocida %q: use up, down o version", args[0])
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Str("accion", args[0]).Msg("sin cambios")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", args[0], err)
	}
	log.Info().Str("accion", args[0]).Msg("migraciones aplicadas")
	return nil
}
