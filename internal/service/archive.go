package service

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"sort"

	"origo-server/internal/repository"

	"go.uber.org/zap"
)

// ArchiveService packages a stored project as a zip stream.
type ArchiveService interface {
	WriteArchive(ctx context.Context, projectID string, w io.Writer) error
}

// Compile-time check to ensure archiveService implements ArchiveService
var _ ArchiveService = (*archiveService)(nil)

type archiveService struct {
	repo   repository.ProjectRepository
	logger *zap.Logger
}

// NewArchiveService builds the zip packaging service.
func NewArchiveService(repo repository.ProjectRepository, logger *zap.Logger) ArchiveService {
	return &archiveService{repo: repo, logger: logger.Named("ArchiveService")}
}

// WriteArchive streams the project as a zip: frontend files under frontend/,
// backend files under backend/, plus a README.md entry. Entries are written
// in sorted order so the same project always produces the same archive.
func (s *archiveService) WriteArchive(ctx context.Context, projectID string, w io.Writer) error {
	artifact, err := s.repo.Get(ctx, projectID)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	writeSection := func(prefix string, files map[string]string) error {
		for _, path := range sortedKeys(files) {
			entry, err := zw.Create(prefix + path)
			if err != nil {
				return fmt.Errorf("creating zip entry %s%s: %w", prefix, path, err)
			}
			if _, err := entry.Write([]byte(files[path])); err != nil {
				return fmt.Errorf("writing zip entry %s%s: %w", prefix, path, err)
			}
		}
		return nil
	}

	if err := writeSection("frontend/", artifact.FrontendFiles); err != nil {
		return err
	}
	if err := writeSection("backend/", artifact.BackendFiles); err != nil {
		return err
	}

	readme, err := zw.Create("README.md")
	if err != nil {
		return fmt.Errorf("creating README.md entry: %w", err)
	}
	if _, err := readme.Write([]byte(artifact.Readme)); err != nil {
		return fmt.Errorf("writing README.md entry: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}

	s.logger.Debug("Archive written",
		zap.String("projectID", projectID),
		zap.Int("entries", len(artifact.FrontendFiles)+len(artifact.BackendFiles)+1))
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
