package usecase

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/seido-lab/chiron/pkg/domain/model"
)

//go:embed prompt/synthesize_system.md
var synthesizeSystemPrompt string

// Synthesize produces a grounded answer from the matched namespace's content
// and the original query. The full content body is embedded verbatim; if it
// exceeds the model's input limits that surfaces as a service error, never as
// silent truncation.
func (uc *UseCases) Synthesize(ctx context.Context, query *model.Query, ns *model.Namespace) (*model.Answer, error) {
	body, err := json.MarshalIndent(ns.Content.Body, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to format namespace content",
			goerr.V("namespaceID", ns.Descriptor.ID),
		)
	}

	prompt := fmt.Sprintf(`User Query: %s

Namespace Data:
%s

Based on the namespace data above, provide a comprehensive answer to the user's query.`, query.Text, body)

	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(synthesizeSystemPrompt),
	)
	if err != nil {
		return nil, wrapServiceError(err, "failed to create synthesis session",
			goerr.V("queryID", query.ID),
			goerr.V("namespaceID", ns.Descriptor.ID),
		)
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, wrapServiceError(err, "synthesis request failed",
			goerr.V("queryID", query.ID),
			goerr.V("namespaceID", ns.Descriptor.ID),
		)
	}

	if len(resp.Texts) == 0 || strings.TrimSpace(resp.Texts[0]) == "" {
		return nil, goerr.New("synthesis returned an empty answer",
			goerr.V("queryID", query.ID),
			goerr.V("namespaceID", ns.Descriptor.ID),
			goerr.T(TagTransient),
		)
	}

	return &model.Answer{
		Text:              strings.TrimSpace(resp.Texts[0]),
		SourceNamespaceID: ns.Descriptor.ID,
	}, nil
}
