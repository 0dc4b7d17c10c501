package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"origo-server/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Compile-time check to ensure cachedProjectRepository implements ProjectRepository
var _ ProjectRepository = (*cachedProjectRepository)(nil)

// cachedProjectRepository is a read-through Redis cache in front of another
// ProjectRepository. Artifacts are immutable after Create, so entries only
// need invalidation on explicit purge.
type cachedProjectRepository struct {
	inner  ProjectRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProjectRepository wraps inner with a Redis artifact cache.
func NewCachedProjectRepository(inner ProjectRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) ProjectRepository {
	return &cachedProjectRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger.Named("ProjectCache"),
	}
}

func projectCacheKey(projectID string) string {
	return fmt.Sprintf("origo:project:%s", projectID)
}

// Create delegates to the inner store and primes the cache on success.
func (r *cachedProjectRepository) Create(ctx context.Context, tree *models.FileTreeResult, req models.GenerationRequest) (string, error) {
	projectID, err := r.inner.Create(ctx, tree, req)
	if err != nil {
		return "", err
	}
	// Prime from the durable store so the cached copy carries created_at.
	if artifact, getErr := r.inner.Get(ctx, projectID); getErr == nil {
		r.set(ctx, artifact)
	}
	return projectID, nil
}

// Get serves from Redis when possible and falls back to the inner store.
func (r *cachedProjectRepository) Get(ctx context.Context, projectID string) (*models.ProjectArtifact, error) {
	key := projectCacheKey(projectID)
	payload, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var artifact models.ProjectArtifact
		if unmarshalErr := json.Unmarshal(payload, &artifact); unmarshalErr == nil {
			r.logger.Debug("Artifact cache hit", zap.String("projectID", projectID))
			return &artifact, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		r.client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("Artifact cache read failed, falling back to store", zap.Error(err), zap.String("projectID", projectID))
	}

	artifact, err := r.inner.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	r.set(ctx, artifact)
	return artifact, nil
}

// List always reads the durable store; listings are cheap and change on purge.
func (r *cachedProjectRepository) List(ctx context.Context) ([]models.ProjectSummary, error) {
	return r.inner.List(ctx)
}

// Delete purges the store first, then the cache entry.
func (r *cachedProjectRepository) Delete(ctx context.Context, projectID string) error {
	if err := r.inner.Delete(ctx, projectID); err != nil {
		return err
	}
	if err := r.client.Del(ctx, projectCacheKey(projectID)).Err(); err != nil {
		r.logger.Warn("Failed to drop cached artifact", zap.Error(err), zap.String("projectID", projectID))
	}
	return nil
}

// DeleteOlderThan delegates the sweep and drops cache entries for victims.
func (r *cachedProjectRepository) DeleteOlderThan(ctx context.Context, threshold time.Time, dryRun bool) ([]string, error) {
	ids, err := r.inner.DeleteOlderThan(ctx, threshold, dryRun)
	if err != nil {
		return nil, err
	}
	if !dryRun {
		for _, id := range ids {
			if delErr := r.client.Del(ctx, projectCacheKey(id)).Err(); delErr != nil {
				r.logger.Warn("Failed to drop cached artifact after sweep", zap.Error(delErr), zap.String("projectID", id))
			}
		}
	}
	return ids, nil
}

func (r *cachedProjectRepository) set(ctx context.Context, artifact *models.ProjectArtifact) {
	payload, err := json.Marshal(artifact)
	if err != nil {
		r.logger.Warn("Failed to marshal artifact for cache", zap.Error(err), zap.String("projectID", artifact.ProjectID))
		return
	}
	if err := r.client.Set(ctx, projectCacheKey(artifact.ProjectID), payload, r.ttl).Err(); err != nil {
		r.logger.Warn("Failed to cache artifact", zap.Error(err), zap.String("projectID", artifact.ProjectID))
	}
}
