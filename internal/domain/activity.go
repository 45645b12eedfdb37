package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActionType identifica o tipo de evento de atribuição
type ActionType string

const (
	ActionView  ActionType = "view"
	ActionClick ActionType = "click"
	ActionBoost ActionType = "boost"
)

// ActivityEvent é o registro imutável de uma interação atribuída a um anúncio.
// Uma vez gravado, apenas a flag Claimed pode mudar (false -> true, uma via).
type ActivityEvent struct {
	ID            int64            `json:"id"`
	AdID          string           `json:"ad_id"`
	WalletAddress string           `json:"wallet_address"`
	ActionType    ActionType       `json:"action_type"`
	BoostAmount   *decimal.Decimal `json:"boost_amount,omitempty"` // presente apenas em eventos boost
	CreatedAt     time.Time        `json:"created_at"`
	Claimed       bool             `json:"claimed"`

	// DedupKey é uma chave de idempotência opcional fornecida pelo cliente
	// para evitar dupla aplicação de boosts em retries
	DedupKey *string `json:"-"`
}

// AttributionRequest carrega os dados necessários para admitir um evento
// de view ou click através do pipeline anti-fraude
type AttributionRequest struct {
	AdID            string
	WalletAddress   string
	SessionID       string
	Origin          string // header Referer/Origin declarado pelo cliente
	RecaptchaToken  string
	TimeSinceLoadMs int64 // tempo desde o carregamento do widget, medido no cliente
}
