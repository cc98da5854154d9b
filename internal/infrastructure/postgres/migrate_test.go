package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/sv?sslmode=disable", migrationURL("postgres://u:p@db:5432/sv?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/sv", migrationURL("postgresql://u@db/sv"))
	assert.Equal(t, "pgx5://u@db/sv", migrationURL("pgx5://u@db/sv"))
}

func TestMigraciones_ParesUpDown(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	assert.Equal(t, ups, downs, "cada migración up debe tener su down")
}

func TestMigraciones_SecuenciaYUnicidad(t *testing.T) {
	raw, err := fs.ReadFile(migrationFiles, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	sql := string(raw)
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS dte_sequences")
	assert.Contains(t, sql, "dtes_company_numero_control_key ON dtes (company_id, numero_control)")
}
