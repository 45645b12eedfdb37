package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ad representa um anúncio exibido no widget embutido
type Ad struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"` // URL da imagem do anúncio
	URL         string          `json:"url"`
	UserWallet  string          `json:"user_wallet"`
	BoostLevel  decimal.Decimal `json:"boost_level"`
	Published   bool            `json:"published"`
	ViewsCount  int64           `json:"views_count"`
	ClicksCount int64           `json:"clicks_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AdFilter representa os filtros de listagem de anúncios para exibição
type AdFilter struct {
	// WalletAddress é a carteira do solicitante: no modo perfil lista apenas
	// os próprios anúncios; no modo público exclui os próprios anúncios
	WalletAddress    string
	Profile          bool
	IncludeZeroBoost bool
}

// CreateAdRequest é o corpo da requisição de criação de anúncio
type CreateAdRequest struct {
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	URL        string          `json:"url"`
	UserWallet string          `json:"user_wallet"`
	BoostLevel decimal.Decimal `json:"boost_level"`
}

// ModerateAdRequest é o corpo da requisição de moderação (publicar/despublicar)
type ModerateAdRequest struct {
	Published bool `json:"published"`
}
