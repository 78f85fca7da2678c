package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/gollem"
	"github.com/seido-lab/chiron/pkg/domain/model"
	"github.com/seido-lab/chiron/pkg/domain/types"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{
		Texts: []string{"This is a test response."},
	}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, options ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, options ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

// scriptedLLMClient hands out one canned session response per NewSession
// call, in order, and records every prompt sent. The pipeline opens the
// classification session first and the synthesis session second.
type scriptedLLMClient struct {
	responses []string
	sessions  int
	prompts   []string
}

func (c *scriptedLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	idx := c.sessions
	c.sessions++
	return &mockLLMSession{
		generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
			for _, in := range input {
				if text, ok := in.(gollem.Text); ok {
					c.prompts = append(c.prompts, string(text))
				}
			}
			if idx >= len(c.responses) {
				return &gollem.Response{Texts: []string{""}}, nil
			}
			return &gollem.Response{Texts: []string{c.responses[idx]}}, nil
		},
	}, nil
}

func (c *scriptedLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func testNamespace(id, title, summary string, body string) *model.Namespace {
	nsID := types.NamespaceID(id)
	return &model.Namespace{
		Descriptor: model.Descriptor{
			ID:      nsID,
			Title:   title,
			Summary: summary,
		},
		Content: model.Content{
			ID:   nsID,
			Body: json.RawMessage(body),
		},
	}
}

func testCatalog() *model.Catalog {
	catalog, err := model.NewCatalog(
		testNamespace("namespace_001", "Math", "Mathematics fundamentals",
			`{"namespace_id":"namespace_001","title":"Math","content":{"topics":["algebra"]}}`),
		testNamespace("namespace_002", "History", "World history including World War II",
			`{"namespace_id":"namespace_002","title":"History","content":{"topics":["World War II"]}}`),
	)
	if err != nil {
		panic(err)
	}
	return catalog
}
