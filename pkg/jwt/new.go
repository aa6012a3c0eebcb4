package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

// Manager handles JWT token generation and verification with an HS256
// symmetric key. Safe for concurrent use.
type Manager struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}

// Claims represents the JWT claims structure.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// New creates a new JWT manager.
func New(cfg Config) (*Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}

	return &Manager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
	}, nil
}
