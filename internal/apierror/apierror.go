// Package apierror provides the error envelope returned by every 4xx/5xx
// response. It carries the same severity tags the UI uses for notices, so a
// client can show an error exactly like any other flash message.
package apierror

// Severity tags shared with dto.Aviso.
const (
	NivelSuccess = "success"
	NivelDanger  = "danger"
	NivelWarning = "warning"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Nivel  string `json:"nivel"`
}

// New builds a "danger" notice, the default for failed operations.
func New(msg string) *APIError {
	return &APIError{Detail: msg, Nivel: NivelDanger}
}

// Warning builds a "warning" notice (used by the authentication gate).
func Warning(msg string) *APIError {
	return &APIError{Detail: msg, Nivel: NivelWarning}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Nivel  string            `json:"nivel"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Nivel: NivelDanger, Fields: fields}
}
