package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
	"github.com/jhoicas/facturacion-sv/pkg/hacienda"
)

// CustomerUseCase casos de uso para clientes (contrapartes habituales).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. Requiere nombre y un documento (número o NIT);
// documento repetido en la empresa devuelve domain.ErrDuplicate.
func (uc *CustomerUseCase) Create(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &dte.ValidationError{Field: "nombre", Message: "el nombre es obligatorio"}
	}
	nit := hacienda.NormalizeNIT(in.NIT)
	document := strings.TrimSpace(in.DocumentNumber)
	if nit == "" && document == "" {
		return nil, &dte.ValidationError{Field: "num_documento", Message: "indique número de documento o NIT"}
	}
	if (in.Department != "" || in.Municipality != "") && !hacienda.ValidMunicipality(in.Department, in.Municipality) {
		return nil, &dte.ValidationError{Field: "municipio", Message: "el municipio no pertenece al departamento"}
	}
	docType := strings.TrimSpace(in.DocumentType)
	if docType == hacienda.DocDUI {
		if err := hacienda.ValidateDUI(document); err != nil {
			return nil, &dte.ValidationError{Field: "num_documento", Message: err.Error()}
		}
	}

	key := document
	if key == "" {
		key = nit
	}
	existing, _ := uc.repo.GetByCompanyAndDocument(companyID, key)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:                  uuid.New().String(),
		CompanyID:           companyID,
		Name:                name,
		TradeName:           strings.TrimSpace(in.TradeName),
		DocumentType:        docType,
		DocumentNumber:      document,
		NIT:                 nit,
		NRC:                 hacienda.NormalizeNRC(in.NRC),
		ActivityCode:        strings.TrimSpace(in.ActivityCode),
		ActivityDescription: strings.TrimSpace(in.ActivityDescription),
		Department:          in.Department,
		Municipality:        in.Municipality,
		Address:             strings.TrimSpace(in.Address),
		CountryCode:         strings.TrimSpace(in.CountryCode),
		CountryName:         strings.TrimSpace(in.CountryName),
		PersonType:          in.PersonType,
		Email:               strings.TrimSpace(in.Email),
		Phone:               strings.TrimSpace(in.Phone),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return entityToCustomerResponse(customer), nil
}

// GetByID obtiene un cliente de la empresa.
func (uc *CustomerUseCase) GetByID(companyID, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return entityToCustomerResponse(c), nil
}

// List lista clientes de la empresa.
func (uc *CustomerUseCase) List(companyID string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  page.Response(0),
	}, nil
}

func entityToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		CounterpartyRequest: dto.CounterpartyRequest{
			DocumentType:        c.DocumentType,
			DocumentNumber:      c.DocumentNumber,
			NIT:                 c.NIT,
			NRC:                 c.NRC,
			Name:                c.Name,
			TradeName:           c.TradeName,
			ActivityCode:        c.ActivityCode,
			ActivityDescription: c.ActivityDescription,
			Department:          c.Department,
			Municipality:        c.Municipality,
			Address:             c.Address,
			CountryCode:         c.CountryCode,
			CountryName:         c.CountryName,
			PersonType:          c.PersonType,
			Email:               c.Email,
			Phone:               c.Phone,
		},
		CreatedAt: c.CreatedAt,
	}
}
