package usecase

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/seido-lab/chiron/pkg/domain/model"
)

// defaultFallbackAnswer is returned when no namespace covers a query
const defaultFallbackAnswer = "I don't have any knowledge that covers this question. Please ask about one of the topics in the loaded knowledge base."

// UseCases bundles the query pipeline stages over a shared catalog and LLM
// client. The catalog is loaded once and treated as read-only.
type UseCases struct {
	llmClient      gollem.LLMClient
	catalog        *model.Catalog
	fallbackAnswer string
	timeout        time.Duration

	classifySystemPrompt string
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithFallbackAnswer overrides the canned out-of-domain answer text
func WithFallbackAnswer(text string) Option {
	return func(uc *UseCases) {
		if text != "" {
			uc.fallbackAnswer = text
		}
	}
}

// WithTimeout bounds each query's external calls. Zero keeps the original
// unbounded blocking behavior.
func WithTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.timeout = d
	}
}

// New creates the pipeline use cases. The catalog must hold at least one
// namespace since classification has nothing to route to otherwise.
func New(llmClient gollem.LLMClient, catalog *model.Catalog, opts ...Option) (*UseCases, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, goerr.New("knowledge catalog is empty")
	}

	uc := &UseCases{
		llmClient:      llmClient,
		catalog:        catalog,
		fallbackAnswer: defaultFallbackAnswer,
	}

	for _, opt := range opts {
		opt(uc)
	}

	// The catalog never changes after load, so the classification system
	// prompt can be rendered once up front.
	prompt, err := renderClassifySystemPrompt(catalog)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build classification system prompt")
	}
	uc.classifySystemPrompt = prompt

	return uc, nil
}
