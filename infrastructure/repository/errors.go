package repository

import "github.com/pkg/errors"

var (
	// ErrAdNotFound indica que o anúncio referenciado não existe
	ErrAdNotFound = errors.New("anúncio não encontrado")

	// ErrDuplicateDedupKey indica que já existe um evento com a mesma chave de
	// idempotência; retries com a mesma chave são rejeitados em vez de duplicar
	ErrDuplicateDedupKey = errors.New("chave de idempotência já utilizada")
)
