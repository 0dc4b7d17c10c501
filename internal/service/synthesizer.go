package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"origo-server/internal/models"

	"go.uber.org/zap"
)

// Synthesizer turns a validated generation request into a file tree. The
// decision logic behind the content is deliberately behind this boundary:
// the pipeline only depends on the contract.
type Synthesizer interface {
	Synthesize(ctx context.Context, req *models.GenerationRequest, mode models.GenerationMode) (*models.FileTreeResult, error)
}

const (
	promptProjectFile   = "project.md"
	promptComponentFile = "component.md"
	promptPreviewFile   = "preview.md"
)

const jsonOnlyPreamble = `Return only valid JSON. No markdown, no code fences, no comments.
If you cannot produce valid JSON, return: {"error":"json_error"}.

The JSON must follow this shape exactly:

{
  "frontend_files": {
    "path/to/file": "file content as a string"
  },
  "backend_files": {
    "path/to/file": "file content as a string"
  },
  "readme": "string"
}
`

var defaultPrompts = map[models.GenerationMode]string{
	models.ModeProject: jsonOnlyPreamble +
		"\nGenerate a complete runnable multi-file project for the product described by the user: " +
		"frontend source files, backend source files, and a README.\n",
	models.ModeComponent: jsonOnlyPreamble +
		"\nGenerate a single narrowed component for the product described by the user. " +
		"Populate only the files the component needs, conventionally one frontend file under src/components/. " +
		"The readme should be a short usage note.\n",
	models.ModePreview: jsonOnlyPreamble +
		"\nGenerate a lightweight preview of the product described by the user: a minimal set of " +
		"frontend files suitable for immediate display. Keep the output small.\n",
}

var promptFiles = map[models.GenerationMode]string{
	models.ModeProject:   promptProjectFile,
	models.ModeComponent: promptComponentFile,
	models.ModePreview:   promptPreviewFile,
}

// Compile-time check to ensure llmSynthesizer implements Synthesizer
var _ Synthesizer = (*llmSynthesizer)(nil)

// llmSynthesizer drives an AIClient with mode-specific prompt templates and
// parses the model's JSON answer into a FileTreeResult.
type llmSynthesizer struct {
	ai      AIClient
	prompts map[models.GenerationMode]string
	logger  *zap.Logger
}

// NewLLMSynthesizer builds a model-backed Synthesizer. Prompt templates are
// read from promptsDir; a missing template falls back to the built-in one.
func NewLLMSynthesizer(ai AIClient, promptsDir string, logger *zap.Logger) Synthesizer {
	log := logger.Named("LLMSynthesizer")
	prompts := make(map[models.GenerationMode]string, len(promptFiles))
	for mode, filename := range promptFiles {
		path := filepath.Join(promptsDir, filename)
		content, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Prompt template not readable, using built-in default",
				zap.String("file", path), zap.Error(err))
			prompts[mode] = defaultPrompts[mode]
			continue
		}
		prompts[mode] = string(content)
	}
	return &llmSynthesizer{ai: ai, prompts: prompts, logger: log}
}

func (s *llmSynthesizer) Synthesize(ctx context.Context, req *models.GenerationRequest, mode models.GenerationMode) (*models.FileTreeResult, error) {
	systemPrompt, ok := s.prompts[mode]
	if !ok {
		return nil, fmt.Errorf("%w: unknown generation mode %q", models.ErrSynthesisFailed, mode)
	}

	text, err := s.ai.GenerateText(ctx, systemPrompt, formatRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSynthesisFailed, err)
	}

	tree, ok := parseFileTree(text)
	if !ok {
		s.logger.Warn("Model output unusable, using fallback scaffold",
			zap.String("mode", string(mode)), zap.Int("responseBytes", len(text)))
		return scaffoldFileTree(req, mode), nil
	}
	return tree, nil
}

// formatRequest renders the request fields as the user message.
func formatRequest(req *models.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Idea: %s\n", req.Idea)
	fmt.Fprintf(&b, "Target Users: %s\n", req.TargetUsers)
	fmt.Fprintf(&b, "Features: %s\n", strings.Join(req.FeatureList(), ", "))
	fmt.Fprintf(&b, "Stack: %s\n", req.Stack)
	return b.String()
}

// fileTreePayload tolerates both "readme" and "README" keys and the model's
// json_error sentinel.
type fileTreePayload struct {
	FrontendFiles map[string]string `json:"frontend_files"`
	BackendFiles  map[string]string `json:"backend_files"`
	Readme        string            `json:"readme"`
	ReadmeUpper   string            `json:"README"`
	Error         string            `json:"error"`
}

// extractJSON cuts the first JSON object out of the model response,
// stripping markdown code fences when present.
func extractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimSpace(trimmed)
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return ""
	}
	return trimmed[start : end+1]
}

// parseFileTree parses the model response into a FileTreeResult. ok is false
// when the response is not usable and the caller should fall back.
func parseFileTree(text string) (*models.FileTreeResult, bool) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, false
	}

	var payload fileTreePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}
	if payload.Error == "json_error" {
		return nil, false
	}

	readme := payload.Readme
	if readme == "" {
		readme = payload.ReadmeUpper
	}
	if payload.FrontendFiles == nil && payload.BackendFiles == nil && readme == "" {
		return nil, false
	}

	return &models.FileTreeResult{
		FrontendFiles: payload.FrontendFiles,
		BackendFiles:  payload.BackendFiles,
		Readme:        readme,
	}, true
}

// Compile-time check to ensure staticSynthesizer implements Synthesizer
var _ Synthesizer = (*staticSynthesizer)(nil)

// staticSynthesizer serves deterministic scaffolds. It is wired in when no
// AI key is configured so the server stays runnable keyless.
type staticSynthesizer struct {
	logger *zap.Logger
}

// NewStaticSynthesizer builds the keyless fallback Synthesizer.
func NewStaticSynthesizer(logger *zap.Logger) Synthesizer {
	return &staticSynthesizer{logger: logger.Named("StaticSynthesizer")}
}

func (s *staticSynthesizer) Synthesize(_ context.Context, req *models.GenerationRequest, mode models.GenerationMode) (*models.FileTreeResult, error) {
	s.logger.Debug("Serving static scaffold", zap.String("mode", string(mode)))
	return scaffoldFileTree(req, mode), nil
}
