package domain

import "github.com/shopspring/decimal"

// EarningsSummary é uma visão derivada dos eventos não resgatados de uma
// carteira. Nunca é persistida: é recalculada sob demanda a partir do ledger.
type EarningsSummary struct {
	WalletAddress string                     `json:"wallet_address"`
	Total         decimal.Decimal            `json:"total"`
	ByAd          map[string]decimal.Decimal `json:"earnings"`
}

// DailyActivity é um balde de atividade agregada por data (UTC, dia)
type DailyActivity struct {
	Date   string          `json:"date"` // formato 2006-01-02
	Views  int64           `json:"views"`
	Clicks int64           `json:"clicks"`
	Boosts decimal.Decimal `json:"boosts"`
}
