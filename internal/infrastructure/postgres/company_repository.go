package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, COALESCE(trade_name, ''), nit, COALESCE(nrc, ''),
	COALESCE(activity_code, ''), COALESCE(activity_description, ''), establishment_type,
	department, municipality, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''),
	status, created_at, updated_at`

func scanCompany(s pgxScanner) (*entity.Company, error) {
	var c entity.Company
	err := s.Scan(
		&c.ID, &c.Name, &c.TradeName, &c.NIT, &c.NRC,
		&c.ActivityCode, &c.ActivityDescription, &c.EstablishmentType,
		&c.Department, &c.Municipality, &c.Address, &c.Phone, &c.Email,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, trade_name, nit, nrc, activity_code, activity_description,
			establishment_type, department, municipality, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, nullIfEmpty(company.TradeName), company.NIT, nullIfEmpty(company.NRC),
		nullIfEmpty(company.ActivityCode), nullIfEmpty(company.ActivityDescription),
		company.EstablishmentType, company.Department, company.Municipality,
		nullIfEmpty(company.Address), nullIfEmpty(company.Phone), nullIfEmpty(company.Email),
		company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByNIT obtiene una empresa por NIT (sin guiones).
func (r *CompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE nit = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, nit))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by NIT: %w", err)
	}
	return c, nil
}

// UpdateProfile actualiza el perfil fiscal. Devuelve domain.ErrNotFound si la empresa no existe.
func (r *CompanyRepo) UpdateProfile(company *entity.Company) error {
	query := `
		UPDATE companies
		   SET name = $2, trade_name = $3, nit = $4, nrc = $5, activity_code = $6,
		       activity_description = $7, establishment_type = $8, department = $9,
		       municipality = $10, address = $11, phone = $12, email = $13, updated_at = $14
		 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, nullIfEmpty(company.TradeName), company.NIT, nullIfEmpty(company.NRC),
		nullIfEmpty(company.ActivityCode), nullIfEmpty(company.ActivityDescription),
		company.EstablishmentType, company.Department, company.Municipality,
		nullIfEmpty(company.Address), nullIfEmpty(company.Phone), nullIfEmpty(company.Email),
		company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IsActive informa si la empresa existe y no está suspendida.
func (r *CompanyRepo) IsActive(ctx context.Context, companyID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1 AND status = 'active')`
	var active bool
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&active); err != nil {
		return false, fmt.Errorf("check company status: %w", err)
	}
	return active, nil
}
