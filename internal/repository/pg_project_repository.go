package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"origo-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	insertProjectQuery = `
        INSERT INTO projects (id, idea, target_users, features, stack, readme)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	insertProjectFileQuery = `
        INSERT INTO project_files (project_id, section, path, content, position)
        VALUES ($1, $2, $3, $4, $5)
    `
	getProjectQuery = `
        SELECT idea, target_users, features, stack, readme, created_at
        FROM projects WHERE id = $1
    `
	getProjectFilesQuery = `
        SELECT section, path, content
        FROM project_files WHERE project_id = $1
        ORDER BY section, position, path
    `
	listProjectsQuery = `
        SELECT p.id, p.idea, p.target_users, p.stack, p.created_at,
               (SELECT count(*) FROM project_files f WHERE f.project_id = p.id) AS file_count
        FROM projects p
        ORDER BY p.created_at DESC
    `
	deleteProjectQuery = `DELETE FROM projects WHERE id = $1`
	listExpiredQuery   = `SELECT id FROM projects WHERE created_at < $1 ORDER BY created_at`
	deleteExpiredQuery = `DELETE FROM projects WHERE created_at < $1 RETURNING id`

	sectionFrontend = "frontend"
	sectionBackend  = "backend"
)

// Compile-time check to ensure pgProjectRepository implements ProjectRepository
var _ ProjectRepository = (*pgProjectRepository)(nil)

type pgProjectRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPgProjectRepository creates a new PostgreSQL-backed ProjectRepository.
func NewPgProjectRepository(pool *pgxpool.Pool, logger *zap.Logger) ProjectRepository {
	return &pgProjectRepository{
		pool:   pool,
		logger: logger.Named("PgProjectRepo"),
	}
}

// newProjectID mints a fresh opaque identifier: a random UUID rendered as
// 32 lowercase hex characters.
func newProjectID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// sortedPaths returns the map keys in ascending order for stable storage.
func sortedPaths(files map[string]string) []string {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create stores the artifact in a single transaction and returns its id.
func (r *pgProjectRepository) Create(ctx context.Context, tree *models.FileTreeResult, req models.GenerationRequest) (string, error) {
	projectID := newProjectID()
	log := r.logger.With(zap.String("projectID", projectID))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin create transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, insertProjectQuery,
		projectID, req.Idea, req.TargetUsers, req.Features, req.Stack, tree.Readme)
	if err != nil {
		log.Error("Failed to insert project row", zap.Error(err))
		return "", fmt.Errorf("failed to insert project: %w", err)
	}

	batch := &pgx.Batch{}
	position := 0
	for _, path := range sortedPaths(tree.FrontendFiles) {
		batch.Queue(insertProjectFileQuery, projectID, sectionFrontend, path, tree.FrontendFiles[path], position)
		position++
	}
	for _, path := range sortedPaths(tree.BackendFiles) {
		batch.Queue(insertProjectFileQuery, projectID, sectionBackend, path, tree.BackendFiles[path], position)
		position++
	}

	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				log.Error("Failed to insert project file", zap.Error(err))
				return "", fmt.Errorf("failed to insert project files: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return "", fmt.Errorf("failed to close file insert batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit create transaction: %w", err)
	}

	log.Info("Project artifact stored",
		zap.Int("frontendFiles", len(tree.FrontendFiles)),
		zap.Int("backendFiles", len(tree.BackendFiles)))
	return projectID, nil
}

// Get returns the complete artifact for the id, or models.ErrNotFound.
func (r *pgProjectRepository) Get(ctx context.Context, projectID string) (*models.ProjectArtifact, error) {
	artifact := &models.ProjectArtifact{
		ProjectID:     projectID,
		FrontendFiles: make(map[string]string),
		BackendFiles:  make(map[string]string),
	}

	err := r.pool.QueryRow(ctx, getProjectQuery, projectID).Scan(
		&artifact.CreatedFrom.Idea,
		&artifact.CreatedFrom.TargetUsers,
		&artifact.CreatedFrom.Features,
		&artifact.CreatedFrom.Stack,
		&artifact.Readme,
		&artifact.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Project not found", zap.String("projectID", projectID))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get project from postgres", zap.Error(err), zap.String("projectID", projectID))
		return nil, fmt.Errorf("failed to get project from postgres: %w", err)
	}

	rows, err := r.pool.Query(ctx, getProjectFilesQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var section, path, content string
		if err := rows.Scan(&section, &path, &content); err != nil {
			return nil, fmt.Errorf("failed to scan project file row: %w", err)
		}
		switch section {
		case sectionFrontend:
			artifact.FrontendFiles[path] = content
		case sectionBackend:
			artifact.BackendFiles[path] = content
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading project file rows: %w", err)
	}

	return artifact, nil
}

// List returns summaries of all stored artifacts, newest first.
func (r *pgProjectRepository) List(ctx context.Context) ([]models.ProjectSummary, error) {
	var summaries []models.ProjectSummary
	if err := pgxscan.Select(ctx, r.pool, &summaries, listProjectsQuery); err != nil {
		r.logger.Error("Failed to list projects", zap.Error(err))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if summaries == nil {
		summaries = []models.ProjectSummary{}
	}
	return summaries, nil
}

// Delete removes one artifact; project_files rows go with it via cascade.
func (r *pgProjectRepository) Delete(ctx context.Context, projectID string) error {
	tag, err := r.pool.Exec(ctx, deleteProjectQuery, projectID)
	if err != nil {
		r.logger.Error("Failed to delete project", zap.Error(err), zap.String("projectID", projectID))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	r.logger.Info("Project deleted", zap.String("projectID", projectID))
	return nil
}

// DeleteOlderThan removes artifacts created before the threshold.
func (r *pgProjectRepository) DeleteOlderThan(ctx context.Context, threshold time.Time, dryRun bool) ([]string, error) {
	query := deleteExpiredQuery
	if dryRun {
		query = listExpiredQuery
	}

	var ids []string
	if err := pgxscan.Select(ctx, r.pool, &ids, query, threshold); err != nil {
		r.logger.Error("Failed retention sweep", zap.Error(err), zap.Time("threshold", threshold), zap.Bool("dryRun", dryRun))
		return nil, fmt.Errorf("failed retention sweep: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	if !dryRun && len(ids) > 0 {
		r.logger.Info("Expired projects deleted", zap.Int("count", len(ids)), zap.Time("threshold", threshold))
	}
	return ids, nil
}
