package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"origo-server/internal/config"

	openaigo "github.com/sashabaranov/go-openai"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "origo_ai_requests_total",
			Help: "Total number of requests to the AI API.",
		},
		[]string{"model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "origo_ai_request_duration_seconds",
			Help:    "Histogram of AI API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
)

// AIClient is the narrow text-generation interface the synthesizer talks to.
type AIClient interface {
	// GenerateText sends the system prompt and user input to the model and
	// returns the raw completion text.
	GenerateText(ctx context.Context, systemPrompt string, userInput string) (string, error)
}

// Compile-time check to ensure openAIClient implements AIClient
var _ AIClient = (*openAIClient)(nil)

type openAIClient struct {
	client         *openaigo.Client
	model          string
	timeout        time.Duration
	maxAttempts    int
	baseRetryDelay time.Duration
	logger         *zap.Logger
}

// NewOpenAIClient builds an AIClient backed by an OpenAI-compatible endpoint.
func NewOpenAIClient(cfg *config.Config, logger *zap.Logger) AIClient {
	clientConfig := openaigo.DefaultConfig(cfg.AIAPIKey)
	if cfg.AIBaseURL != "" {
		clientConfig.BaseURL = cfg.AIBaseURL
	}

	maxAttempts := cfg.AIMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &openAIClient{
		client:         openaigo.NewClientWithConfig(clientConfig),
		model:          cfg.AIModel,
		timeout:        cfg.AITimeout,
		maxAttempts:    maxAttempts,
		baseRetryDelay: cfg.AIBaseRetryDelay,
		logger:         logger.Named("OpenAIClient"),
	}
}

// GenerateText calls the chat completion API with retries and exponential
// backoff. The context bounds the whole attempt loop.
func (c *openAIClient) GenerateText(ctx context.Context, systemPrompt string, userInput string) (string, error) {
	if strings.TrimSpace(systemPrompt) == "" {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error"}).Inc()
		return "", fmt.Errorf("system prompt is empty")
	}

	messages := []openaigo.ChatCompletionMessage{
		{Role: openaigo.ChatMessageRoleSystem, Content: systemPrompt},
	}
	if userInput != "" {
		messages = append(messages, openaigo.ChatCompletionMessage{
			Role: openaigo.ChatMessageRoleUser, Content: userInput,
		})
	}

	request := openaigo.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.2,
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		startTime := time.Now()
		response, err := c.client.CreateChatCompletion(attemptCtx, request)
		cancel()
		aiRequestDuration.With(prometheus.Labels{"model": c.model}).Observe(time.Since(startTime).Seconds())

		if err == nil {
			if len(response.Choices) == 0 {
				err = fmt.Errorf("AI response contained no choices")
			} else {
				aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "success"}).Inc()
				return response.Choices[0].Message.Content, nil
			}
		}

		lastErr = err
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error"}).Inc()
		c.logger.Warn("AI request failed",
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", c.maxAttempts),
			zap.Error(err),
		)

		if attempt < c.maxAttempts {
			delay := c.baseRetryDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return "", fmt.Errorf("AI request failed after %d attempts: %w", c.maxAttempts, lastErr)
}
