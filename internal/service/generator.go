package service

import (
	"context"
	"fmt"
	"time"

	"origo-server/internal/models"
	"origo-server/internal/repository"

	"go.uber.org/zap"
)

// CleanupReport describes the outcome of a retention pass.
type CleanupReport struct {
	Deleted   []string  `json:"deleted"`
	Threshold time.Time `json:"threshold"`
	DryRun    bool      `json:"dry_run"`
}

// GeneratorService is the application surface for synthesis and project
// lifecycle. All three generation entry points run the same pipeline and
// differ only in mode and persistence.
type GeneratorService interface {
	GenerateProject(ctx context.Context, req *models.GenerationRequest) (*models.ProjectArtifact, error)
	GenerateComponent(ctx context.Context, req *models.GenerationRequest) (*models.FileTreeResult, error)
	GeneratePreview(ctx context.Context, req *models.GenerationRequest) (*models.FileTreeResult, error)
	GetProject(ctx context.Context, projectID string) (*models.ProjectArtifact, error)
	ListProjects(ctx context.Context) ([]models.ProjectSummary, error)
	DeleteProject(ctx context.Context, projectID string) error
	Cleanup(ctx context.Context, olderThanDays int, dryRun bool) (*CleanupReport, error)
}

// Compile-time check to ensure generatorService implements GeneratorService
var _ GeneratorService = (*generatorService)(nil)

type generatorService struct {
	synth           Synthesizer
	repo            repository.ProjectRepository
	defaultCleanups int
	logger          *zap.Logger
}

// NewGeneratorService wires the pipeline. defaultCleanupDays is used when a
// cleanup call does not name a retention window.
func NewGeneratorService(synth Synthesizer, repo repository.ProjectRepository, defaultCleanupDays int, logger *zap.Logger) GeneratorService {
	return &generatorService{
		synth:           synth,
		repo:            repo,
		defaultCleanups: defaultCleanupDays,
		logger:          logger.Named("GeneratorService"),
	}
}

func (s *generatorService) GenerateProject(ctx context.Context, req *models.GenerationRequest) (*models.ProjectArtifact, error) {
	tree, err := s.generate(ctx, req, models.ModeProject)
	if err != nil {
		return nil, err
	}

	projectID, err := s.repo.Create(ctx, tree, *req)
	if err != nil {
		s.logger.Error("Failed to persist generated project", zap.Error(err))
		return nil, fmt.Errorf("storing project: %w", err)
	}

	s.logger.Info("Project generated",
		zap.String("projectID", projectID),
		zap.Int("frontendFiles", len(tree.FrontendFiles)),
		zap.Int("backendFiles", len(tree.BackendFiles)))

	return &models.ProjectArtifact{
		ProjectID:     projectID,
		FrontendFiles: tree.FrontendFiles,
		BackendFiles:  tree.BackendFiles,
		Readme:        tree.Readme,
		CreatedFrom:   *req,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func (s *generatorService) GenerateComponent(ctx context.Context, req *models.GenerationRequest) (*models.FileTreeResult, error) {
	return s.generate(ctx, req, models.ModeComponent)
}

func (s *generatorService) GeneratePreview(ctx context.Context, req *models.GenerationRequest) (*models.FileTreeResult, error) {
	return s.generate(ctx, req, models.ModePreview)
}

// generate runs validation, synthesis and path sanitation. Persistence is
// the caller's concern.
func (s *generatorService) generate(ctx context.Context, req *models.GenerationRequest, mode models.GenerationMode) (*models.FileTreeResult, error) {
	if err := NormalizeRequest(req); err != nil {
		return nil, err
	}

	tree, err := s.synth.Synthesize(ctx, req, mode)
	if err != nil {
		s.logger.Error("Synthesis failed", zap.String("mode", string(mode)), zap.Error(err))
		return nil, err
	}

	if err := SanitizeFileTree(tree); err != nil {
		s.logger.Error("Generated file tree rejected", zap.String("mode", string(mode)), zap.Error(err))
		return nil, err
	}

	return tree, nil
}

func (s *generatorService) GetProject(ctx context.Context, projectID string) (*models.ProjectArtifact, error) {
	return s.repo.Get(ctx, projectID)
}

func (s *generatorService) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	return s.repo.List(ctx)
}

func (s *generatorService) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.repo.Delete(ctx, projectID); err != nil {
		return err
	}
	s.logger.Info("Project deleted", zap.String("projectID", projectID))
	return nil
}

func (s *generatorService) Cleanup(ctx context.Context, olderThanDays int, dryRun bool) (*CleanupReport, error) {
	if olderThanDays < 0 {
		return nil, fmt.Errorf("%w: older_than_days must not be negative", models.ErrInvalidInput)
	}
	if olderThanDays == 0 {
		olderThanDays = s.defaultCleanups
	}

	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	deleted, err := s.repo.DeleteOlderThan(ctx, threshold, dryRun)
	if err != nil {
		s.logger.Error("Cleanup pass failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Cleanup pass finished",
		zap.Time("threshold", threshold),
		zap.Bool("dryRun", dryRun),
		zap.Int("affected", len(deleted)))

	if deleted == nil {
		deleted = []string{}
	}
	return &CleanupReport{Deleted: deleted, Threshold: threshold, DryRun: dryRun}, nil
}
