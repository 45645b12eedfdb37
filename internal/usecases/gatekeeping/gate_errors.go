package gatekeeping

import (
	"errors"
	"fmt"
)

// Erros do pipeline de admissão de eventos. Qualquer um deles significa que
// nada foi gravado no ledger (o gate falha fechado).
var (
	// Erros de autorização
	ErrUnauthorizedOrigin = errors.New("referer fora da allowlist de origens")
	ErrMissingProof       = errors.New("token de prova de humanidade ausente")
	ErrInvalidProof       = errors.New("falha na verificação de prova de humanidade")

	// Erros das heurísticas de tempo
	ErrInteractionTooFast     = errors.New("interação rápida demais após o carregamento do widget")
	ErrInteractionTooFrequent = errors.New("intervalo entre interações abaixo do mínimo")

	// Erros de domínio
	ErrAdNotFound = errors.New("anúncio não encontrado")

	// Erros de infraestrutura
	ErrStorageUnavailable = errors.New("erro ao gravar evento no ledger")
)

// GateError é um erro de admissão com contexto adicional
type GateError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AdID      string // Anúncio envolvido (quando aplicável)
	SessionID string // Sessão do widget envolvida (quando aplicável)
}

// Error implementa a interface error
func (e *GateError) Error() string {
	if e.AdID != "" {
		return fmt.Sprintf("%s (anúncio %s)", e.Err.Error(), e.AdID)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GateError) Unwrap() error {
	return e.Err
}

// IsRejection verifica se o erro é uma rejeição do pipeline (e não uma falha
// de infraestrutura): rejeições não devem ser repetidas automaticamente
func IsRejection(err error) bool {
	return errors.Is(err, ErrUnauthorizedOrigin) ||
		errors.Is(err, ErrMissingProof) ||
		errors.Is(err, ErrInvalidProof) ||
		errors.Is(err, ErrInteractionTooFast) ||
		errors.Is(err, ErrInteractionTooFrequent)
}

// NewGateError cria um novo erro de admissão
func NewGateError(baseErr error, code string, adID string, sessionID string) *GateError {
	return &GateError{
		Err:       baseErr,
		Code:      code,
		AdID:      adID,
		SessionID: sessionID,
	}
}
