package authenticating

import "github.com/pkg/errors"

var (
	// ErrInvalidCredentials indica que o segredo de administração não confere
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrInvalidToken indica um token JWT inválido, expirado ou sem o papel exigido
	ErrInvalidToken = errors.New("token inválido")
)
