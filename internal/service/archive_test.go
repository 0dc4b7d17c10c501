package service_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"origo-server/internal/mocks"
	"origo-server/internal/models"
	"origo-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readZipEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(content)
	}
	return entries
}

func TestWriteArchive(t *testing.T) {
	ctx := context.Background()

	artifact := &models.ProjectArtifact{
		ProjectID: "a3f8c2d14b0e4f6a9c7d8e1f2a3b4c5d",
		FrontendFiles: map[string]string{
			"src/App.jsx":       "frontend code",
			"public/index.html": "<html></html>",
		},
		BackendFiles: map[string]string{
			"app/main.py": "backend code",
		},
		Readme: "# Project",
	}

	t.Run("Archive contains prefixed sections and README", func(t *testing.T) {
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewArchiveService(mockRepo, zap.NewNop())

		mockRepo.On("Get", ctx, artifact.ProjectID).Return(artifact, nil).Once()

		var buf bytes.Buffer
		err := svc.WriteArchive(ctx, artifact.ProjectID, &buf)
		require.NoError(t, err)

		entries := readZipEntries(t, buf.Bytes())
		assert.Len(t, entries, 4)
		assert.Equal(t, "frontend code", entries["frontend/src/App.jsx"])
		assert.Equal(t, "<html></html>", entries["frontend/public/index.html"])
		assert.Equal(t, "backend code", entries["backend/app/main.py"])
		assert.Equal(t, "# Project", entries["README.md"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("README entry is written even when empty", func(t *testing.T) {
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewArchiveService(mockRepo, zap.NewNop())

		empty := &models.ProjectArtifact{
			ProjectID:     "deadbeefdeadbeefdeadbeefdeadbeef",
			FrontendFiles: map[string]string{},
			BackendFiles:  map[string]string{},
		}
		mockRepo.On("Get", ctx, empty.ProjectID).Return(empty, nil).Once()

		var buf bytes.Buffer
		err := svc.WriteArchive(ctx, empty.ProjectID, &buf)
		require.NoError(t, err)

		entries := readZipEntries(t, buf.Bytes())
		assert.Len(t, entries, 1)
		assert.Contains(t, entries, "README.md")
		assert.Equal(t, "", entries["README.md"])
	})

	t.Run("Same project produces byte-identical archives", func(t *testing.T) {
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewArchiveService(mockRepo, zap.NewNop())

		mockRepo.On("Get", ctx, artifact.ProjectID).Return(artifact, nil).Twice()

		var first, second bytes.Buffer
		require.NoError(t, svc.WriteArchive(ctx, artifact.ProjectID, &first))
		require.NoError(t, svc.WriteArchive(ctx, artifact.ProjectID, &second))

		assert.Equal(t, first.Bytes(), second.Bytes())
	})

	t.Run("Unknown project propagates not found", func(t *testing.T) {
		mockRepo := mocks.NewMockProjectRepository(t)
		svc := service.NewArchiveService(mockRepo, zap.NewNop())

		mockRepo.On("Get", ctx, "missing").Return(nil, models.ErrNotFound).Once()

		var buf bytes.Buffer
		err := svc.WriteArchive(ctx, "missing", &buf)

		assert.True(t, errors.Is(err, models.ErrNotFound))
		assert.Zero(t, buf.Len())
	})
}
