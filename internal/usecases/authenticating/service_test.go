package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzzleprime/ad-serving-api/internal/config"
)

func newAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			AdminSecret: "segredo-admin",
			TokenSecret: "segredo-token",
			TokenTTL:    time.Hour,
		},
	}
}

func TestLoginAdmin(t *testing.T) {
	service := NewService(newAuthConfig())

	t.Run("Segredo correto devolve token válido", func(t *testing.T) {
		token, err := service.LoginAdmin("segredo-admin")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("Segredo incorreto é rejeitado", func(t *testing.T) {
		_, err := service.LoginAdmin("segredo-errado")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Segredo vazio é rejeitado", func(t *testing.T) {
		_, err := service.LoginAdmin("")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	service := NewService(newAuthConfig())

	t.Run("Token malformado é rejeitado", func(t *testing.T) {
		_, err := service.ValidateToken("não-é-um-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		otherCfg := newAuthConfig()
		otherCfg.Auth.TokenSecret = "outro-segredo"
		otherService := NewService(otherCfg)

		token, err := otherService.LoginAdmin("segredo-admin")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token expirado é rejeitado", func(t *testing.T) {
		expiredCfg := newAuthConfig()
		expiredCfg.Auth.TokenTTL = -time.Minute
		expiredService := NewService(expiredCfg)

		token, err := expiredService.LoginAdmin("segredo-admin")
		require.NoError(t, err)

		_, err = expiredService.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
