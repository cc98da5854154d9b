package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, company_id, name, COALESCE(trade_name, ''), COALESCE(document_type, ''),
	COALESCE(document_number, ''), COALESCE(nit, ''), COALESCE(nrc, ''), COALESCE(activity_code, ''),
	COALESCE(activity_description, ''), COALESCE(department, ''), COALESCE(municipality, ''),
	COALESCE(address, ''), COALESCE(country_code, ''), COALESCE(country_name, ''), person_type,
	COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at`

func scanCustomer(s pgxScanner) (*entity.Customer, error) {
	var c entity.Customer
	err := s.Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.TradeName, &c.DocumentType,
		&c.DocumentNumber, &c.NIT, &c.NRC, &c.ActivityCode,
		&c.ActivityDescription, &c.Department, &c.Municipality,
		&c.Address, &c.CountryCode, &c.CountryName, &c.PersonType,
		&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente. Documento repetido en la empresa → domain.ErrDuplicate.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, company_id, name, trade_name, document_type, document_number, nit, nrc,
			activity_code, activity_description, department, municipality, address, country_code,
			country_name, person_type, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.CompanyID, customer.Name, nullIfEmpty(customer.TradeName),
		nullIfEmpty(customer.DocumentType), nullIfEmpty(customer.DocumentNumber),
		nullIfEmpty(customer.NIT), nullIfEmpty(customer.NRC),
		nullIfEmpty(customer.ActivityCode), nullIfEmpty(customer.ActivityDescription),
		nullIfEmpty(customer.Department), nullIfEmpty(customer.Municipality), nullIfEmpty(customer.Address),
		nullIfEmpty(customer.CountryCode), nullIfEmpty(customer.CountryName), customer.PersonType,
		nullIfEmpty(customer.Email), nullIfEmpty(customer.Phone),
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByCompanyAndDocument busca por número de documento o, en su defecto, por NIT.
func (r *CustomerRepo) GetByCompanyAndDocument(companyID, document string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE company_id = $1 AND COALESCE(NULLIF(document_number, ''), nit) = $2`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, companyID, document))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by document: %w", err)
	}
	return c, nil
}

// ListByCompany lista clientes de la empresa con paginación.
func (r *CustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
