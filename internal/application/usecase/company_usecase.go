package usecase

import (
	"context"
	"fmt"
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

// EstablishmentTxRunner ejecuta fn con un repo de establecimientos atado a una transacción.
type EstablishmentTxRunner interface {
	RunEstablishment(ctx context.Context, fn func(repo repository.EstablishmentRepository) error) error
}

// CompanyUseCase perfil fiscal del emisor y sus establecimientos.
type CompanyUseCase struct {
	repo              repository.CompanyRepository
	establishmentRepo repository.EstablishmentRepository
	txRunner          EstablishmentTxRunner
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, establishmentRepo repository.EstablishmentRepository, txRunner EstablishmentTxRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, establishmentRepo: establishmentRepo, txRunner: txRunner}
}

// GetProfile obtiene el perfil fiscal de la empresa.
func (uc *CompanyUseCase) GetProfile(companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// UpdateProfile reemplaza el perfil fiscal. NIT y NRC se guardan sin guiones; la descripción
// de la actividad se resuelve en el catálogo si no se envía; el municipio debe pertenecer al
// departamento. Un NIT ya registrado por otra empresa devuelve domain.ErrDuplicate.
func (uc *CompanyUseCase) UpdateProfile(companyID string, in dto.UpdateCompanyProfileRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &dte.ValidationError{Field: "name", Message: "la razón social es obligatoria"}
	}
	nit := hacienda.NormalizeNIT(in.NIT)
	if nit != "" && !hacienda.ValidNIT(nit) {
		return nil, &dte.ValidationError{Field: "nit", Message: "el NIT debe tener 9 o 14 dígitos"}
	}
	nrc := hacienda.NormalizeNRC(in.NRC)
	if nrc != "" && !hacienda.ValidNRC(nrc) {
		return nil, &dte.ValidationError{Field: "nrc", Message: "NRC inválido"}
	}
	if !hacienda.ValidMunicipality(in.Department, in.Municipality) {
		return nil, &dte.ValidationError{Field: "municipality", Message: "el municipio no pertenece al departamento"}
	}
	activity := strings.TrimSpace(in.ActivityCode)
	if activity != "" && !hacienda.KnownActivity(activity) && strings.TrimSpace(in.ActivityDescription) == "" {
		return nil, &dte.ValidationError{Field: "activity_code", Message: "actividad desconocida; envíe activity_description"}
	}
	estType := in.EstablishmentType
	if estType == "" {
		estType = hacienda.EstablecimientoPredeterminado
	}

	if nit == "" {
		nit = company.NIT
	}
	company.Name = name
	company.TradeName = strings.TrimSpace(in.TradeName)
	company.NIT = nit
	company.NRC = nrc
	company.ActivityCode = activity
	company.ActivityDescription = ""
	if activity != "" {
		company.ActivityDescription = hacienda.ActivityDescription(activity, in.ActivityDescription)
	}
	company.EstablishmentType = estType
	company.Department = in.Department
	company.Municipality = in.Municipality
	company.Address = strings.TrimSpace(in.Address)
	company.Phone = strings.TrimSpace(in.Phone)
	company.Email = strings.TrimSpace(in.Email)
	company.UpdatedAt = time.Now()

	if err := uc.repo.UpdateProfile(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// CreateEstablishment registra un establecimiento; si viene activo reemplaza al activo anterior.
func (uc *CompanyUseCase) CreateEstablishment(ctx context.Context, companyID string, in dto.CreateEstablishmentRequest) (*dto.EstablishmentResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &dte.ValidationError{Field: "name", Message: "el nombre es obligatorio"}
	}
	codEstable := strings.ToUpper(strings.TrimSpace(in.CodEstable))
	codPOS := strings.ToUpper(strings.TrimSpace(in.CodPuntoVenta))
	if len(codEstable) > 4 || len(codPOS) > 3 {
		return nil, &dte.ValidationError{Field: "cod_estable", Message: "establecimiento máx. 4 caracteres y punto de venta máx. 3"}
	}
	if codEstable == "" {
		codEstable = dte.DefaultCodEstable
	}
	if codPOS == "" {
		codPOS = dte.DefaultCodPuntoVenta
	}
	typ := in.Type
	if typ == "" {
		typ = hacienda.EstablecimientoPredeterminado
	}
	now := time.Now()
	est := &entity.Establishment{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            name,
		Type:            typ,
		CodEstable:      codEstable,
		CodPuntoVenta:   codPOS,
		CodEstableMH:    strings.TrimSpace(in.CodEstableMH),
		CodPuntoVentaMH: strings.TrimSpace(in.CodPuntoVentaMH),
		IsActive:        in.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	err := uc.txRunner.RunEstablishment(ctx, func(repo repository.EstablishmentRepository) error {
		return repo.Create(ctx, est)
	})
	if err != nil {
		return nil, fmt.Errorf("crear establecimiento: %w", err)
	}
	return entityToEstablishmentResponse(est), nil
}

// ListEstablishments lista los establecimientos de la empresa (activo primero).
func (uc *CompanyUseCase) ListEstablishments(ctx context.Context, companyID string) ([]dto.EstablishmentResponse, error) {
	list, err := uc.establishmentRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EstablishmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *entityToEstablishmentResponse(e))
	}
	return out, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                  c.ID,
		Name:                c.Name,
		TradeName:           c.TradeName,
		NIT:                 c.NIT,
		NRC:                 c.NRC,
		ActivityCode:        c.ActivityCode,
		ActivityDescription: c.ActivityDescription,
		EstablishmentType:   c.EstablishmentType,
		Department:          c.Department,
		DepartmentName:      hacienda.DepartmentName(c.Department),
		Municipality:        c.Municipality,
		MunicipalityName:    hacienda.MunicipalityName(c.Department, c.Municipality),
		Address:             c.Address,
		Phone:               c.Phone,
		Email:               c.Email,
		Status:              c.Status,
		CanIssue:            dte.CheckProfile(c.FiscalProfile()) == nil,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func entityToEstablishmentResponse(e *entity.Establishment) *dto.EstablishmentResponse {
	return &dto.EstablishmentResponse{
		ID:              e.ID,
		Name:            e.Name,
		Type:            e.Type,
		CodEstable:      e.CodEstable,
		CodPuntoVenta:   e.CodPuntoVenta,
		CodEstableMH:    e.CodEstableMH,
		CodPuntoVentaMH: e.CodPuntoVentaMH,
		Active:          e.IsActive,
		CreatedAt:       e.CreatedAt,
	}
}
