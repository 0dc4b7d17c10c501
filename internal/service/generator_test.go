package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"origo-server/internal/mocks"
	"origo-server/internal/models"
	"origo-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestGenerateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful generation persists and returns the artifact", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		req := &models.GenerationRequest{Idea: "  budget planner ", Stack: "React + FastAPI"}
		tree := &models.FileTreeResult{
			FrontendFiles: map[string]string{"src/App.jsx": "code"},
			BackendFiles:  map[string]string{"app/main.py": "code"},
			Readme:        "# Budget planner",
		}

		mockSynth.On("Synthesize", ctx, req, models.ModeProject).Return(tree, nil).Once()
		mockRepo.On("Create", ctx, tree, mock.MatchedBy(func(r models.GenerationRequest) bool {
			return r.Idea == "budget planner"
		})).Return("a3f8c2d14b0e4f6a9c7d8e1f2a3b4c5d", nil).Once()

		artifact, err := svc.GenerateProject(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "a3f8c2d14b0e4f6a9c7d8e1f2a3b4c5d", artifact.ProjectID)
		assert.Equal(t, tree.FrontendFiles, artifact.FrontendFiles)
		assert.Equal(t, "# Budget planner", artifact.Readme)
		assert.Equal(t, "budget planner", artifact.CreatedFrom.Idea)
		mockSynth.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing idea fails before synthesis", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		artifact, err := svc.GenerateProject(ctx, &models.GenerationRequest{Idea: "   "})

		assert.Nil(t, artifact)
		assert.True(t, errors.Is(err, models.ErrMissingIdea))
		mockSynth.AssertNotCalled(t, "Synthesize", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Synthesis failure does not touch the store", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		req := &models.GenerationRequest{Idea: "budget planner"}
		mockSynth.On("Synthesize", ctx, req, models.ModeProject).
			Return(nil, models.ErrSynthesisFailed).Once()

		artifact, err := svc.GenerateProject(ctx, req)

		assert.Nil(t, artifact)
		assert.True(t, errors.Is(err, models.ErrSynthesisFailed))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unsafe generated path does not touch the store", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		req := &models.GenerationRequest{Idea: "budget planner"}
		tree := &models.FileTreeResult{
			FrontendFiles: map[string]string{"../escape.js": "code"},
		}
		mockSynth.On("Synthesize", ctx, req, models.ModeProject).Return(tree, nil).Once()

		artifact, err := svc.GenerateProject(ctx, req)

		assert.Nil(t, artifact)
		assert.True(t, errors.Is(err, models.ErrUnsafeGeneratedPath))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store failure surfaces as an error", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		req := &models.GenerationRequest{Idea: "budget planner"}
		tree := &models.FileTreeResult{FrontendFiles: map[string]string{"a.js": "x"}}
		mockSynth.On("Synthesize", ctx, req, models.ModeProject).Return(tree, nil).Once()
		mockRepo.On("Create", ctx, tree, mock.Anything).Return("", errors.New("connection reset")).Once()

		artifact, err := svc.GenerateProject(ctx, req)

		assert.Nil(t, artifact)
		assert.Error(t, err)
	})
}

func TestGenerateComponentAndPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("Component result is returned without persisting", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		req := &models.GenerationRequest{Idea: "pricing card"}
		tree := &models.FileTreeResult{
			FrontendFiles: map[string]string{"src/components/AutoComponent.jsx": "code"},
		}
		mockSynth.On("Synthesize", ctx, req, models.ModeComponent).Return(tree, nil).Once()

		got, err := svc.GenerateComponent(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, tree, got)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Preview result is returned without persisting", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		req := &models.GenerationRequest{Idea: "landing page"}
		tree := &models.FileTreeResult{
			FrontendFiles: map[string]string{"preview.html": "<html></html>"},
		}
		mockSynth.On("Synthesize", ctx, req, models.ModePreview).Return(tree, nil).Once()

		got, err := svc.GeneratePreview(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, tree, got)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses the default retention when days is zero", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		mockRepo.On("DeleteOlderThan", ctx, mock.MatchedBy(func(threshold time.Time) bool {
			expected := time.Now().UTC().AddDate(0, 0, -7)
			return threshold.Sub(expected).Abs() < time.Minute
		}), false).Return([]string{"abc123"}, nil).Once()

		report, err := svc.Cleanup(ctx, 0, false)

		assert.NoError(t, err)
		assert.Equal(t, []string{"abc123"}, report.Deleted)
		assert.False(t, report.DryRun)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Dry run is passed through and reported", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		mockRepo.On("DeleteOlderThan", ctx, mock.Anything, true).Return(nil, nil).Once()

		report, err := svc.Cleanup(ctx, 30, true)

		assert.NoError(t, err)
		assert.True(t, report.DryRun)
		assert.NotNil(t, report.Deleted)
		assert.Empty(t, report.Deleted)
	})

	t.Run("Negative retention is rejected", func(t *testing.T) {
		mockSynth := mocks.NewMockSynthesizer(t)
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewGeneratorService(mockSynth, mockRepo, 7, zap.NewNop())

		report, err := svc.Cleanup(ctx, -1, false)

		assert.Nil(t, report)
		assert.True(t, errors.Is(err, models.ErrInvalidInput))
		mockRepo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything, mock.Anything)
	})
}
