package service_test

import (
	"context"
	"errors"
	"testing"

	"origo-server/internal/mocks"
	"origo-server/internal/models"
	"origo-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestLLMSynthesizer(t *testing.T) {
	ctx := context.Background()
	req := &models.GenerationRequest{
		Idea:        "recipe sharing site",
		TargetUsers: "home cooks",
		Features:    "search, ratings",
		Stack:       "React + FastAPI",
	}

	t.Run("Parses a plain JSON response", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		synth := service.NewLLMSynthesizer(mockAI, t.TempDir(), zap.NewNop())

		response := `{"frontend_files":{"src/App.jsx":"code"},"backend_files":{"app/main.py":"code"},"readme":"# Recipes"}`
		mockAI.On("GenerateText", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(response, nil).Once()

		tree, err := synth.Synthesize(ctx, req, models.ModeProject)

		assert.NoError(t, err)
		assert.Equal(t, "code", tree.FrontendFiles["src/App.jsx"])
		assert.Equal(t, "code", tree.BackendFiles["app/main.py"])
		assert.Equal(t, "# Recipes", tree.Readme)
		mockAI.AssertExpectations(t)
	})

	t.Run("Strips markdown fences around the JSON", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		synth := service.NewLLMSynthesizer(mockAI, t.TempDir(), zap.NewNop())

		response := "```json\n{\"frontend_files\":{\"src/App.jsx\":\"x\"},\"backend_files\":{},\"readme\":\"r\"}\n```"
		mockAI.On("GenerateText", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(response, nil).Once()

		tree, err := synth.Synthesize(ctx, req, models.ModeProject)

		assert.NoError(t, err)
		assert.Equal(t, "x", tree.FrontendFiles["src/App.jsx"])
		assert.Equal(t, "r", tree.Readme)
	})

	t.Run("Accepts uppercase README key", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		synth := service.NewLLMSynthesizer(mockAI, t.TempDir(), zap.NewNop())

		response := `{"frontend_files":{"a.js":"x"},"backend_files":{},"README":"upper"}`
		mockAI.On("GenerateText", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(response, nil).Once()

		tree, err := synth.Synthesize(ctx, req, models.ModeProject)

		assert.NoError(t, err)
		assert.Equal(t, "upper", tree.Readme)
	})

	t.Run("Falls back to scaffold on json_error sentinel", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		synth := service.NewLLMSynthesizer(mockAI, t.TempDir(), zap.NewNop())

		mockAI.On("GenerateText", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(`{"error":"json_error"}`, nil).Once()

		tree, err := synth.Synthesize(ctx, req, models.ModeProject)

		assert.NoError(t, err)
		assert.Contains(t, tree.FrontendFiles, "src/App.jsx")
		assert.Contains(t, tree.BackendFiles, "app/main.py")
		assert.NotEmpty(t, tree.Readme)
	})

	t.Run("Falls back to scaffold on unparseable output", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		synth := service.NewLLMSynthesizer(mockAI, t.TempDir(), zap.NewNop())

		mockAI.On("GenerateText", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return("Sorry, I cannot do that.", nil).Once()

		tree, err := synth.Synthesize(ctx, req, models.ModeProject)

		assert.NoError(t, err)
		assert.NotEmpty(t, tree.FrontendFiles)
	})

	t.Run("Wraps transport failure as synthesis error", func(t *testing.T) {
		mockAI := mocks.NewMockAIClient(t)
		synth := service.NewLLMSynthesizer(mockAI, t.TempDir(), zap.NewNop())

		mockAI.On("GenerateText", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return("", errors.New("upstream timeout")).Once()

		tree, err := synth.Synthesize(ctx, req, models.ModeProject)

		assert.Nil(t, tree)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrSynthesisFailed))
	})
}

func TestStaticSynthesizer(t *testing.T) {
	ctx := context.Background()
	req := &models.GenerationRequest{
		Idea:     "habit tracker",
		Features: "streaks, reminders",
	}
	synth := service.NewStaticSynthesizer(zap.NewNop())

	t.Run("Project scaffold has both sections and a readme", func(t *testing.T) {
		tree, err := synth.Synthesize(ctx, req, models.ModeProject)

		assert.NoError(t, err)
		assert.Contains(t, tree.FrontendFiles, "public/index.html")
		assert.Contains(t, tree.FrontendFiles, "src/App.jsx")
		assert.Contains(t, tree.BackendFiles, "app/main.py")
		assert.Contains(t, tree.Readme, "habit tracker")
		assert.Contains(t, tree.Readme, "streaks")
	})

	t.Run("Component scaffold is a single frontend file", func(t *testing.T) {
		tree, err := synth.Synthesize(ctx, req, models.ModeComponent)

		assert.NoError(t, err)
		assert.Len(t, tree.FrontendFiles, 1)
		assert.Contains(t, tree.FrontendFiles, "src/components/AutoComponent.jsx")
		assert.Empty(t, tree.BackendFiles)
	})

	t.Run("Preview scaffold is a standalone page", func(t *testing.T) {
		tree, err := synth.Synthesize(ctx, req, models.ModePreview)

		assert.NoError(t, err)
		assert.Contains(t, tree.FrontendFiles, "preview.html")
		assert.Contains(t, tree.FrontendFiles["preview.html"], "habit tracker")
		assert.Empty(t, tree.BackendFiles)
	})

	t.Run("Scaffold paths pass sanitation", func(t *testing.T) {
		for _, mode := range []models.GenerationMode{models.ModeProject, models.ModeComponent, models.ModePreview} {
			tree, err := synth.Synthesize(ctx, req, mode)
			assert.NoError(t, err)
			assert.NoError(t, service.SanitizeFileTree(tree))
		}
	})
}
