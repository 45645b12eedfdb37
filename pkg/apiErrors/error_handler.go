package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de autorização (origem/prova de humanidade)
	ErrUnauthorizedOrigin = "AUTH_001" // Referer fora da allowlist de origens
	ErrInvalidProof       = "AUTH_002" // Falha na verificação de prova de humanidade
	ErrInvalidToken       = "AUTH_003" // Token de administração inválido
	ErrInvalidCredentials = "AUTH_004" // Segredo de administração inválido

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidAmount       = "VAL_003" // Valor de boost inválido (deve ser decimal positivo)

	// Erros de domínio
	ErrAdNotFound       = "ADS_001" // Anúncio não encontrado
	ErrRejectedActivity = "ADS_002" // Evento rejeitado pelas heurísticas anti-fraude
	ErrBoostConflict    = "ADS_003" // Colisão de escrita de boost; seguro repetir com chave de idempotência

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrUnauthorizedOrigin:  http.StatusForbidden,
	ErrInvalidProof:        http.StatusForbidden,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidAmount:       http.StatusBadRequest,
	ErrAdNotFound:          http.StatusNotFound,
	ErrRejectedActivity:    http.StatusForbidden,
	ErrBoostConflict:       http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
