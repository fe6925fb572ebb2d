package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrMissingToken          = "AUTH_001" // Cabeçalho Authorization ausente
	ErrInvalidToken          = "AUTH_006" // Token inválido ou recusado pelo Sales Entry Store
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidAmount       = "VAL_004" // Valor de venda inválido
	ErrInvalidDate         = "VAL_005" // Data de venda inválida
	ErrInvalidWindow       = "VAL_006" // Janela da série diária inválida
	ErrInvalidTimezone     = "VAL_007" // Fuso horário desconhecido
	ErrInvalidFieldLength  = "VAL_008" // Campo de texto fora do tamanho permitido
	ErrInvalidQuantity     = "VAL_009" // Quantidade fora do intervalo
	ErrNothingToVerify     = "VAL_010" // Nenhum documento informado para verificação

	// Erros de rota
	ErrRouteNotFound    = "ROUTE_001" // Rota inexistente
	ErrMethodNotAllowed = "ROUTE_002" // Método não suportado pela rota

	// Erros de empréstimo
	ErrLoanAmountOutOfRange = "LOAN_001" // Valor fora do intervalo permitido
	ErrLoanInvalidPurpose   = "LOAN_002" // Finalidade desconhecida
	ErrLoanNotFound         = "LOAN_003" // Pedido não encontrado
	ErrLoanAlreadyReviewed  = "LOAN_004" // Pedido já revisado
	ErrLoanInvalidStatus    = "LOAN_005" // Status de revisão inválido

	// Erros de agendamento
	ErrUnknownJob = "CRON_001" // Tarefa desconhecida

	// Erros de limite de requisições
	ErrTooManyRequests = "RATE_001"

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidAmount:         http.StatusBadRequest,
	ErrInvalidDate:           http.StatusBadRequest,
	ErrInvalidWindow:         http.StatusBadRequest,
	ErrInvalidTimezone:       http.StatusBadRequest,
	ErrInvalidFieldLength:    http.StatusBadRequest,
	ErrInvalidQuantity:       http.StatusBadRequest,
	ErrNothingToVerify:       http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrLoanAmountOutOfRange:  http.StatusUnprocessableEntity,
	ErrLoanInvalidPurpose:    http.StatusBadRequest,
	ErrLoanNotFound:          http.StatusNotFound,
	ErrLoanAlreadyReviewed:   http.StatusConflict,
	ErrLoanInvalidStatus:     http.StatusBadRequest,
	ErrUnknownJob:            http.StatusNotFound,
	ErrTooManyRequests:       http.StatusTooManyRequests,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
