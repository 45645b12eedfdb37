package boosting

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount indica que o valor de boost não é um decimal positivo
	ErrInvalidAmount = errors.New("valor de boost deve ser um decimal positivo")

	// ErrAdNotFound indica que o anúncio a receber o boost não existe
	ErrAdNotFound = errors.New("anúncio não encontrado")

	// ErrDuplicateBoost indica que a chave de idempotência já foi usada:
	// o boost original foi aplicado e o retry não deve duplicá-lo
	ErrDuplicateBoost = errors.New("boost já aplicado com esta chave de idempotência")

	// ErrTransactionFailed indica falha da unidade atômica saldo+evento;
	// nada foi aplicado e a operação inteira pode ser repetida com segurança
	// se o chamador fornecer uma chave de idempotência
	ErrTransactionFailed = errors.New("falha na transação de boost")
)

// BoostError é um erro de boost com contexto adicional
type BoostError struct {
	Err  error  // Erro base
	Code string // Código de erro para API
	AdID string // Anúncio envolvido
}

// Error implementa a interface error
func (e *BoostError) Error() string {
	if e.AdID != "" {
		return fmt.Sprintf("%s (anúncio %s)", e.Err.Error(), e.AdID)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BoostError) Unwrap() error {
	return e.Err
}

// NewBoostError cria um novo erro de boost
func NewBoostError(baseErr error, code string, adID string) *BoostError {
	return &BoostError{
		Err:  baseErr,
		Code: code,
		AdID: adID,
	}
}
