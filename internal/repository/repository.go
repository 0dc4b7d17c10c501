package repository

import (
	"context"
	"time"

	"origo-server/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts a pgx pool or transaction so repositories can run inside either.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProjectRepository is the artifact store: it mints project identifiers,
// persists generated file trees atomically and serves them back unchanged.
// Artifacts are immutable once created; the only mutations are operational
// purges (Delete, DeleteOlderThan).
type ProjectRepository interface {
	// Create persists the file tree under a freshly minted project id and
	// returns the id. The write is transactional: either the whole artifact
	// becomes visible or none of it.
	Create(ctx context.Context, tree *models.FileTreeResult, req models.GenerationRequest) (string, error)
	// Get returns the complete stored artifact, or models.ErrNotFound.
	Get(ctx context.Context, projectID string) (*models.ProjectArtifact, error)
	// List returns summaries of all stored artifacts, newest first.
	List(ctx context.Context) ([]models.ProjectSummary, error)
	// Delete removes one artifact, or returns models.ErrNotFound.
	Delete(ctx context.Context, projectID string) error
	// DeleteOlderThan removes artifacts created before the threshold and
	// returns their ids. With dryRun it only reports what would be removed.
	DeleteOlderThan(ctx context.Context, threshold time.Time, dryRun bool) ([]string, error)
}

// ItemRepository stores the free-text records of the plain CRUD collaborator.
type ItemRepository interface {
	Create(ctx context.Context, text string) (*models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context) ([]models.Item, error)
	Update(ctx context.Context, id int64, text string) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
}
