package service

import (
	"fmt"
	"strings"

	"origo-server/internal/models"
)

// NormalizeRequest trims all request fields in place and checks the one hard
// requirement: a non-empty idea. Pure, no side effects beyond the trim.
func NormalizeRequest(req *models.GenerationRequest) error {
	req.Idea = strings.TrimSpace(req.Idea)
	req.TargetUsers = strings.TrimSpace(req.TargetUsers)
	req.Features = strings.TrimSpace(req.Features)
	req.Stack = strings.TrimSpace(req.Stack)

	if req.Idea == "" {
		return models.ErrMissingIdea
	}
	return nil
}

// IsValidRelPath reports whether path is a safe relative file path:
// forward slashes only, no leading or trailing slash, no empty or ".."
// segments, and a basename carrying an extension.
func IsValidRelPath(path string) bool {
	if path == "" || strings.Contains(path, "\\") {
		return false
	}
	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return false
	}
	segments := strings.Split(path, "/")
	for _, seg := range segments {
		if seg == "" || seg == ".." {
			return false
		}
	}
	base := segments[len(segments)-1]
	return strings.Contains(base, ".")
}

// SanitizeFileTree normalizes a synthesizer result before it may reach the
// artifact store: nil maps become empty maps, and every file path must pass
// IsValidRelPath. Synthesizer output is untrusted at this boundary.
func SanitizeFileTree(tree *models.FileTreeResult) error {
	if tree.FrontendFiles == nil {
		tree.FrontendFiles = make(map[string]string)
	}
	if tree.BackendFiles == nil {
		tree.BackendFiles = make(map[string]string)
	}
	for path := range tree.FrontendFiles {
		if !IsValidRelPath(path) {
			return fmt.Errorf("%w: frontend file %q", models.ErrUnsafeGeneratedPath, path)
		}
	}
	for path := range tree.BackendFiles {
		if !IsValidRelPath(path) {
			return fmt.Errorf("%w: backend file %q", models.ErrUnsafeGeneratedPath, path)
		}
	}
	return nil
}
