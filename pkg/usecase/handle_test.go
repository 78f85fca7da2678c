package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
	"github.com/seido-lab/chiron/pkg/domain/types"
	"github.com/seido-lab/chiron/pkg/usecase"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("matched query is answered from namespace content", func(t *testing.T) {
		llmClient := &scriptedLLMClient{
			responses: []string{
				"namespace_002",
				"World War II was a global conflict that lasted from 1939 to 1945.",
			},
		}

		uc, err := usecase.New(llmClient, testCatalog())
		gt.NoError(t, err).Required()

		answer, err := uc.Handle(ctx, "Tell me about World War II")
		gt.NoError(t, err).Required()

		gt.Value(t, answer.SourceNamespaceID).Equal(types.NamespaceID("namespace_002"))
		gt.String(t, answer.Text).NotEqual("")
		gt.Bool(t, strings.Contains(answer.Text, "World War II")).True()

		// Two sessions: classification then synthesis
		gt.Number(t, llmClient.sessions).Equal(2)
		// The synthesis prompt carries the History content body
		gt.Array(t, llmClient.prompts).Length(2).Required()
		gt.Bool(t, strings.Contains(llmClient.prompts[1], "namespace_002")).True()
	})

	t.Run("unmatched query gets the canned answer without synthesis", func(t *testing.T) {
		llmClient := &scriptedLLMClient{
			responses: []string{"NO_NAMESPACE_FOUND"},
		}

		uc, err := usecase.New(llmClient, testCatalog())
		gt.NoError(t, err).Required()

		answer, err := uc.Handle(ctx, "asdkjashdkjh")
		gt.NoError(t, err).Required()

		gt.Value(t, answer.SourceNamespaceID).Equal(types.NamespaceID(""))
		gt.Value(t, answer.Text).Equal(usecase.DefaultFallbackAnswer)

		// Only the classification session was opened
		gt.Number(t, llmClient.sessions).Equal(1)
	})

	t.Run("unknown namespace from the model gets the canned answer", func(t *testing.T) {
		llmClient := &scriptedLLMClient{
			responses: []string{"namespace_999"},
		}

		uc, err := usecase.New(llmClient, testCatalog())
		gt.NoError(t, err).Required()

		answer, err := uc.Handle(ctx, "Tell me about something")
		gt.NoError(t, err).Required()

		gt.Value(t, answer.SourceNamespaceID).Equal(types.NamespaceID(""))
		gt.Number(t, llmClient.sessions).Equal(1)
	})

	t.Run("empty input never reaches classification", func(t *testing.T) {
		llmClient := &scriptedLLMClient{}

		uc, err := usecase.New(llmClient, testCatalog())
		gt.NoError(t, err).Required()

		_, err = uc.Handle(ctx, "   ")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrEmptyInput)).True()
		gt.Number(t, llmClient.sessions).Equal(0)
	})

	t.Run("identical queries yield identical answers", func(t *testing.T) {
		newClient := func() *scriptedLLMClient {
			return &scriptedLLMClient{
				responses: []string{"namespace_001", "Algebra is the study of symbols."},
			}
		}

		first, err := usecase.New(newClient(), testCatalog())
		gt.NoError(t, err).Required()
		second, err := usecase.New(newClient(), testCatalog())
		gt.NoError(t, err).Required()

		a1, err := first.Handle(ctx, "What is algebra?")
		gt.NoError(t, err).Required()
		a2, err := second.Handle(ctx, "What is algebra?")
		gt.NoError(t, err).Required()

		gt.Value(t, a1.Text).Equal(a2.Text)
		gt.Value(t, a1.SourceNamespaceID).Equal(a2.SourceNamespaceID)
	})

	t.Run("custom fallback answer is used", func(t *testing.T) {
		llmClient := &scriptedLLMClient{
			responses: []string{"NO_NAMESPACE_FOUND"},
		}

		uc, err := usecase.New(llmClient, testCatalog(),
			usecase.WithFallbackAnswer("That topic is not in my library."),
		)
		gt.NoError(t, err).Required()

		answer, err := uc.Handle(ctx, "what about trains?")
		gt.NoError(t, err).Required()
		gt.Value(t, answer.Text).Equal("That topic is not in my library.")
	})

	t.Run("transient classification failure is absorbed", func(t *testing.T) {
		called := false
		llmClient := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						called = true
						return nil, status.Error(codes.Unavailable, "upstream unavailable")
					},
				}, nil
			},
		}

		uc, err := usecase.New(llmClient, testCatalog())
		gt.NoError(t, err).Required()

		answer, err := uc.Handle(ctx, "Tell me about World War II")
		gt.NoError(t, err).Required()
		gt.Value(t, answer.Text).Equal(usecase.DefaultFallbackAnswer)
		gt.Value(t, answer.SourceNamespaceID).Equal(types.NamespaceID(""))
		gt.Bool(t, called).True() // the classification call itself ran
	})

	t.Run("permanent classification failure propagates", func(t *testing.T) {
		llmClient := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return nil, status.Error(codes.Unauthenticated, "bad credentials")
					},
				}, nil
			},
		}

		uc, err := usecase.New(llmClient, testCatalog())
		gt.NoError(t, err).Required()

		_, err = uc.Handle(ctx, "Tell me about World War II")
		gt.Error(t, err)
		gt.Bool(t, usecase.IsPermanent(err)).True()
	})
}

func TestNew(t *testing.T) {
	t.Run("requires an LLM client", func(t *testing.T) {
		_, err := usecase.New(nil, testCatalog())
		gt.Error(t, err)
	})

	t.Run("requires a non-empty catalog", func(t *testing.T) {
		_, err := usecase.New(&mockLLMClient{}, nil)
		gt.Error(t, err)
	})
}
