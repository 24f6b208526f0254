package pipeline

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do pipeline
var (
	// Erros de configuração
	ErrConfigInvalid = errors.New("invalid pipeline configuration")

	// Erros de busca nos canais
	ErrFetchMarketplace = errors.New("error fetching marketplace orders")
	ErrFetchStorefront  = errors.New("error fetching storefront orders")

	// Erros de formato de dados
	ErrMappingUnavailable = errors.New("sku mapping unavailable")

	// Erros de publicação
	ErrPublishFailed = errors.New("error publishing report")

	// Erros de execução
	ErrRunInProgress = errors.New("pipeline run already in progress")
)

// PipelineError é um erro com o estágio em que a execução falhou.
type PipelineError struct {
	Err     error  // Erro base
	Stage   Stage  // Estágio em que a falha ocorreu
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PipelineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Stage, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Stage)
}

// Unwrap retorna o erro subjacente
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError cria um novo PipelineError
func NewPipelineError(err error, stage Stage, details string) *PipelineError {
	return &PipelineError{
		Err:     err,
		Stage:   stage,
		Details: details,
	}
}
