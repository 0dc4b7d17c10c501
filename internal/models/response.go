package models

// Machine-readable error codes returned alongside HTTP statuses.
const (
	ErrCodeBadRequest = "bad_request"
	ErrCodeValidation = "validation_failed"
	ErrCodeNotFound   = "not_found"
	ErrCodeSynthesis  = "synthesis_failed"
	ErrCodeInternal   = "internal_error"
)

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GenerateProjectResponse is the wire shape of a successful full-project
// generation. Field names are the wire contract consumed by the frontend.
type GenerateProjectResponse struct {
	ProjectID     string            `json:"project_id"`
	FrontendFiles map[string]string `json:"frontend_files"`
	BackendFiles  map[string]string `json:"backend_files"`
	Readme        string            `json:"README"`
}
