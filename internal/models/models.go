package models

import (
	"strings"
	"time"
)

// GenerationMode selects which kind of synthesis a request asks for.
// All modes share one synthesizer contract; only the project mode persists.
type GenerationMode string

const (
	ModeProject   GenerationMode = "project"
	ModeComponent GenerationMode = "component"
	ModePreview   GenerationMode = "preview"
)

// GenerationRequest describes the product the caller wants generated.
// Only Idea is mandatory; the rest default to empty strings.
type GenerationRequest struct {
	Idea        string `json:"idea"`
	TargetUsers string `json:"target_users"`
	Features    string `json:"features"`
	Stack       string `json:"stack"`
}

// FeatureList splits the free-text Features field into a normalized list.
// Comma and semicolon separators are both tolerated.
func (r *GenerationRequest) FeatureList() []string {
	raw := strings.ReplaceAll(r.Features, ";", ",")
	parts := strings.Split(raw, ",")
	features := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			features = append(features, f)
		}
	}
	return features
}

// FileTreeResult is the three-part shape every synthesis call returns.
// File maps key a relative forward-slash path to file content.
type FileTreeResult struct {
	FrontendFiles map[string]string `json:"frontend_files"`
	BackendFiles  map[string]string `json:"backend_files"`
	Readme        string            `json:"README"`
}

// ProjectArtifact is the immutable unit of persistence: one successful
// full-project generation, addressable by its ProjectID.
type ProjectArtifact struct {
	ProjectID     string            `json:"project_id"`
	FrontendFiles map[string]string `json:"frontend_files"`
	BackendFiles  map[string]string `json:"backend_files"`
	Readme        string            `json:"README"`
	CreatedFrom   GenerationRequest `json:"created_from"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ProjectSummary is the reduced representation used by project listings.
type ProjectSummary struct {
	ProjectID   string    `json:"project_id" db:"id"`
	Idea        string    `json:"idea" db:"idea"`
	TargetUsers string    `json:"target_users" db:"target_users"`
	Stack       string    `json:"stack" db:"stack"`
	FileCount   int       `json:"file_count" db:"file_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Item is a free-text record exposed by the plain CRUD collaborator API.
type Item struct {
	ID        int64     `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
