package authenticating

import (
	"crypto/subtle"
	"time"

	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator valida o acesso às rotas administrativas (moderação de
// anúncios, resgate de eventos e execução manual de crons)
type Authenticator interface {
	LoginAdmin(secret string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims são as claims carregadas no token JWT de administração
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// LoginAdmin troca o segredo compartilhado de administração por um token JWT
func (s *Service) LoginAdmin(secret string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.Auth.AdminSecret)) != 1 {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.TokenSecret))
}

// ValidateToken valida um token JWT e retorna as claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.TokenSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != "admin" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
