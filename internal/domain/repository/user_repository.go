package repository

import (
	"context"

	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
)

// UserRepository persistencia de usuarios. El email es único en todo el sistema;
// las demás lecturas van acotadas a una empresa.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByID devuelve nil, nil si el usuario no existe o pertenece a otra empresa.
	GetByID(ctx context.Context, companyID, id string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
