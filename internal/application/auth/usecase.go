package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/application/usecase"
	"github.com/jhoicas/facturacion-sv/internal/domain"
	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
	"github.com/jhoicas/facturacion-sv/pkg/hacienda"
	"github.com/jhoicas/facturacion-sv/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	signer      *jwt.Signer
	hashCost    int
}

// NewAuthUseCase construye el caso de uso de auth; signer firma los tokens de sesión.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, signer *jwt.Signer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, signer: signer, hashCost: bcrypt.DefaultCost}
}

// WithHashCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithHashCost(cost int) *AuthUseCase {
	uc.hashCost = cost
	return uc
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
//
// Con company_id el usuario se une a esa empresa (rol por defecto emisor).
// Sin company_id se crea la empresa con company_name y nit, con el perfil fiscal
// pendiente, y el usuario queda como admin.
//
// Retorna:
//   - domain.ErrEmailAlreadyExists si el email ya está registrado
//   - domain.ErrNotFound si la empresa indicada no existe
//   - domain.ErrDuplicate si el NIT ya pertenece a otra empresa
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, _ := uc.userRepo.GetByEmail(ctx, email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	companyID := in.CompanyID
	role := in.Role
	if companyID != "" {
		company, err := uc.companyRepo.GetByID(companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
		if role == "" {
			role = entity.RoleEmisor
		}
		if !entity.ValidRole(role) {
			return nil, &dte.ValidationError{Field: "role", Message: "rol desconocido"}
		}
	} else {
		company, err := uc.createCompany(in)
		if err != nil {
			return nil, err
		}
		companyID = company.ID
		role = entity.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       entity.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return usecase.EntityToUserResponse(user), nil
}

func (uc *AuthUseCase) createCompany(in dto.RegisterRequest) (*entity.Company, error) {
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return nil, &dte.ValidationError{Field: "company_name", Message: "indique company_id o company_name"}
	}
	nit := hacienda.NormalizeNIT(in.NIT)
	if nit != "" {
		if !hacienda.ValidNIT(nit) {
			return nil, &dte.ValidationError{Field: "nit", Message: "el NIT debe tener 9 o 14 dígitos"}
		}
		taken, _ := uc.companyRepo.GetByNIT(nit)
		if taken != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	company := &entity.Company{
		ID:                uuid.New().String(),
		Name:              name,
		NIT:               nit,
		EstablishmentType: hacienda.EstablecimientoPredeterminado,
		Status:            entity.CompanyActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// Login verifica email y password y emite el token de sesión con su vencimiento.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.CanLogin() {
		return nil, domain.ErrForbidden
	}
	token, exp, err := uc.signer.Sign(jwt.Identity{UserID: user.ID, CompanyID: user.CompanyID, Role: user.Role})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      *usecase.EntityToUserResponse(user),
	}, nil
}
