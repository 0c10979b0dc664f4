// Package apierror provides the standardized error response structures for the
// API. All errors returned to clients go through this package to ensure
// consistency and to prevent leaking internal details (stack traces, SQL, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// The field is spelled "erro" on the wire, matching what the frontends expect.
type APIError struct {
	Erro string `json:"erro"`
}

func New(msg string) *APIError {
	return &APIError{Erro: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Erro   string            `json:"erro"`
	Campos map[string]string `json:"campos"`
}

func NewValidation(campos map[string]string) *ValidationError {
	return &ValidationError{Erro: "Erro de validação", Campos: campos}
}
