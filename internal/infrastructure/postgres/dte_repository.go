package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

var _ repository.DTERepository = (*DTERepo)(nil)

// DTERepo implementación de DTERepository (usable con pool o tx).
type DTERepo struct {
	q Querier
}

// NewDTERepository construye el adaptador. Pasar pool o tx (Querier).
func NewDTERepository(q Querier) *DTERepo {
	return &DTERepo{q: q}
}

const dteColumns = `id, company_id, COALESCE(customer_id::text, ''), tipo_dte, numero_control,
	codigo_generacion, status, COALESCE(receptor_nombre, ''), COALESCE(receptor_documento, ''),
	total_gravada, total_iva, total_retenido, total_pagar, documento,
	COALESCE(sello_recibido, ''), COALESCE(observaciones, ''), fec_emi,
	COALESCE(created_by::text, ''), created_at, updated_at`

func scanDTE(s pgxScanner) (*entity.DTE, error) {
	var d entity.DTE
	err := s.Scan(
		&d.ID, &d.CompanyID, &d.CustomerID, &d.TipoDTE, &d.NumeroControl,
		&d.CodigoGeneracion, &d.Status, &d.ReceptorNombre, &d.ReceptorDocumento,
		&d.TotalGravada, &d.TotalIVA, &d.TotalRetenido, &d.TotalPagar, &d.Documento,
		&d.SelloRecibido, &d.Observaciones, &d.FecEmi,
		&d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste el documento. Un número de control o código de generación repetido
// devuelve domain.ErrConflict para que el llamador reintente con un correlativo nuevo.
func (r *DTERepo) Create(ctx context.Context, d *entity.DTE) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO dtes (id, company_id, customer_id, tipo_dte, numero_control, codigo_generacion, status,
			receptor_nombre, receptor_documento, total_gravada, total_iva, total_retenido, total_pagar,
			documento, sello_recibido, observaciones, fec_emi, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, nullIfEmpty(d.CustomerID), d.TipoDTE, d.NumeroControl, d.CodigoGeneracion, d.Status,
		nullIfEmpty(d.ReceptorNombre), nullIfEmpty(d.ReceptorDocumento),
		d.TotalGravada, d.TotalIVA, d.TotalRetenido, d.TotalPagar,
		d.Documento, nullIfEmpty(d.SelloRecibido), nullIfEmpty(d.Observaciones), d.FecEmi,
		nullIfEmpty(d.CreatedBy), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrConflict, constraintName(err))
		}
		return fmt.Errorf("insert dte: %w", err)
	}
	return nil
}

// GetByID obtiene el documento completo (incluye el JSON).
func (r *DTERepo) GetByID(ctx context.Context, companyID, id string) (*entity.DTE, error) {
	query := `SELECT ` + dteColumns + ` FROM dtes WHERE company_id = $1 AND id = $2`
	d, err := scanDTE(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dte: %w", err)
	}
	return d, nil
}

// filterClause arma el WHERE del listado; $1 siempre es company_id.
func filterClause(companyID string, f entity.DTEFilter) (string, []any) {
	conds := []string{"company_id = $1"}
	args := []any{companyID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.TipoDTE != "" {
		add("tipo_dte = $%d", f.TipoDTE)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.From != nil {
		add("fec_emi >= $%d", *f.From)
	}
	if f.To != nil {
		add("fec_emi < $%d", *f.To)
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List devuelve los documentos más recientes primero. No carga el JSON para aligerar la consulta.
func (r *DTERepo) List(ctx context.Context, companyID string, f entity.DTEFilter, limit, offset int) ([]*entity.DTE, error) {
	where, args := filterClause(companyID, f)
	args = append(args, limit, offset)
	query := `SELECT ` + strings.Replace(dteColumns, "documento,", "NULL::jsonb,", 1) + ` FROM dtes` + where +
		fmt.Sprintf(" ORDER BY fec_emi DESC, numero_control DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dtes: %w", err)
	}
	defer rows.Close()
	var list []*entity.DTE
	for rows.Next() {
		d, err := scanDTE(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dte: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Count total de documentos que cumplen el filtro (paginación).
func (r *DTERepo) Count(ctx context.Context, companyID string, f entity.DTEFilter) (int, error) {
	where, args := filterClause(companyID, f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM dtes`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count dtes: %w", err)
	}
	return n, nil
}

// GetStatus devuelve solo los campos de estado (consulta ligera para polling).
func (r *DTERepo) GetStatus(ctx context.Context, companyID, id string) (*entity.DTE, error) {
	const query = `
		SELECT id, company_id, tipo_dte, numero_control, codigo_generacion, status,
		       COALESCE(sello_recibido, ''), COALESCE(observaciones, ''), updated_at
		FROM dtes WHERE company_id = $1 AND id = $2`
	var d entity.DTE
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&d.ID, &d.CompanyID, &d.TipoDTE, &d.NumeroControl, &d.CodigoGeneracion, &d.Status,
		&d.SelloRecibido, &d.Observaciones, &d.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dte status: %w", err)
	}
	return &d, nil
}

// UpdateStatus aplica la transición solo si el estado actual es from (compare-and-set).
// Devuelve domain.ErrNotFound si el documento no existe y domain.ErrConflict si el estado cambió.
func (r *DTERepo) UpdateStatus(ctx context.Context, d *entity.DTE, from string) error {
	const query = `
		UPDATE dtes
		   SET status         = $3,
		       sello_recibido = COALESCE($4, sello_recibido),
		       observaciones  = COALESCE($5, observaciones),
		       updated_at     = $6
		 WHERE company_id = $1 AND id = $2 AND status = $7`
	cmd, err := r.q.Exec(ctx, query,
		d.CompanyID, d.ID, d.Status,
		nullIfEmpty(d.SelloRecibido), nullIfEmpty(d.Observaciones),
		d.UpdatedAt, from,
	)
	if err != nil {
		return fmt.Errorf("update dte status: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	current, err := r.GetStatus(ctx, d.CompanyID, d.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: estado actual %s", domain.ErrConflict, current.Status)
}
