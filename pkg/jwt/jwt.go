// Package jwt firma y verifica los tokens de sesión del API de facturación.
// Cada token fija al usuario dentro de una sola empresa emisora.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptySecret indica que no se configuró JWT_SECRET.
	ErrEmptySecret = errors.New("jwt: secret vacío")
	// ErrMissingTenant indica un token sin empresa; no sirve para operar DTE.
	ErrMissingTenant = errors.New("jwt: token sin company_id")
)

// Identity es quien opera: usuario, empresa emisora y rol.
type Identity struct {
	UserID    string
	CompanyID string
	Role      string
}

type claims struct {
	jwt.RegisteredClaims
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}

// Signer emite tokens HS256 con emisor y vigencia fijos.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner construye el firmador. ttl <= 0 se toma como 60 minutos.
func NewSigner(secret, issuer string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Signer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Sign devuelve el token y el instante en que vence.
func (s *Signer) Sign(id Identity) (string, time.Time, error) {
	if id.CompanyID == "" {
		return "", time.Time{}, ErrMissingTenant
	}
	now := s.now()
	exp := now.Add(s.ttl)
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		CompanyID: id.CompanyID,
		Role:      id.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: firmar: %w", err)
	}
	return token, exp, nil
}

// Verify valida firma (solo HS256), vencimiento obligatorio y, si issuer no es vacío, el emisor.
func Verify(secret, issuer, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, ErrEmptySecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return Identity{}, err
	}
	if c.CompanyID == "" {
		return Identity{}, ErrMissingTenant
	}
	return Identity{UserID: c.Subject, CompanyID: c.CompanyID, Role: c.Role}, nil
}
