package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API de operação do pipeline
const (
	// Erros de configuração (credenciais ausentes ou malformadas)
	ErrConfig = "CFG_001"

	// Erros de busca nos canais de venda
	ErrFetch = "FET_001"

	// Erros de formato de dados (mapeamento ou registro malformado)
	ErrDataShape = "DAT_001"

	// Erros de publicação no destino
	ErrPublish = "PUB_001"

	// Erros de validação de requisição
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrRunInProgress   = "SRV_002" // Execução do pipeline já em andamento
	ErrExternalService = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrConfig:              http.StatusInternalServerError,
	ErrFetch:               http.StatusBadGateway,
	ErrDataShape:           http.StatusUnprocessableEntity,
	ErrPublish:             http.StatusBadGateway,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrRunInProgress:       http.StatusConflict,
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
