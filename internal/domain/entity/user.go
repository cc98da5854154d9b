package entity

import "time"

// Roles de usuario dentro de una empresa.
const (
	RoleAdmin  = "admin"  // administra el perfil fiscal y registra la transmisión
	RoleEmisor = "emisor" // emite y consulta documentos
)

// Estados de usuario.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User operador de una sola empresa emisora.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLogin indica si el usuario puede obtener un token.
func (u *User) CanLogin() bool { return u.Status == UserActive }

// ValidRole reporta si r es un rol conocido.
func ValidRole(r string) bool { return r == RoleAdmin || r == RoleEmisor }
