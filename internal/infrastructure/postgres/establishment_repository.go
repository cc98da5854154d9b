package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

var _ repository.EstablishmentRepository = (*EstablishmentRepo)(nil)

// EstablishmentRepo implementa EstablishmentRepository sobre PostgreSQL.
type EstablishmentRepo struct {
	q Querier
}

// NewEstablishmentRepository construye el repositorio. Pasar pool o tx.
func NewEstablishmentRepository(q Querier) *EstablishmentRepo {
	return &EstablishmentRepo{q: q}
}

const establishmentColumns = `id, company_id, name, type, cod_estable, cod_punto_venta,
	COALESCE(cod_estable_mh, ''), COALESCE(cod_punto_venta_mh, ''), is_active, created_at, updated_at`

func scanEstablishment(s pgxScanner) (*entity.Establishment, error) {
	var e entity.Establishment
	err := s.Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.Type, &e.CodEstable, &e.CodPuntoVenta,
		&e.CodEstableMH, &e.CodPuntoVentaMH, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserta el establecimiento. Si viene activo, desactiva antes los demás de la empresa;
// el índice parcial establishments_one_active garantiza uno solo activo.
// Debe ejecutarse dentro de una transacción (ver TxRunner.RunEstablishment).
func (r *EstablishmentRepo) Create(ctx context.Context, e *entity.Establishment) error {
	if e.IsActive {
		const deactivate = `UPDATE establishments SET is_active = false, updated_at = now()
			WHERE company_id = $1 AND is_active`
		if _, err := r.q.Exec(ctx, deactivate, e.CompanyID); err != nil {
			return fmt.Errorf("deactivate establishments: %w", err)
		}
	}
	const q = `
		INSERT INTO establishments
			(id, company_id, name, type, cod_estable, cod_punto_venta, cod_estable_mh, cod_punto_venta_mh,
			 is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, q,
		e.ID, e.CompanyID, e.Name, e.Type, e.CodEstable, e.CodPuntoVenta,
		nullIfEmpty(e.CodEstableMH), nullIfEmpty(e.CodPuntoVentaMH),
		e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert establishment: %w", err)
	}
	return nil
}

// GetActive devuelve nil, nil si la empresa no tiene establecimiento activo
// (se usan los códigos por defecto de la configuración).
func (r *EstablishmentRepo) GetActive(ctx context.Context, companyID string) (*entity.Establishment, error) {
	q := `SELECT ` + establishmentColumns + `
		FROM establishments WHERE company_id = $1 AND is_active LIMIT 1`
	e, err := scanEstablishment(r.q.QueryRow(ctx, q, companyID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active establishment: %w", err)
	}
	return e, nil
}

func (r *EstablishmentRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Establishment, error) {
	q := `SELECT ` + establishmentColumns + `
		FROM establishments WHERE company_id = $1 ORDER BY is_active DESC, created_at DESC`
	rows, err := r.q.Query(ctx, q, companyID)
	if err != nil {
		return nil, fmt.Errorf("list establishments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Establishment
	for rows.Next() {
		e, err := scanEstablishment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan establishment: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
