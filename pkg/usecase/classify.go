package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/seido-lab/chiron/pkg/domain/model"
	"github.com/seido-lab/chiron/pkg/domain/types"
	"github.com/seido-lab/chiron/pkg/utils/logging"
)

//go:embed prompt/classify_system.md
var classifySystemPromptTmpl string

var classifySystemPrompt = template.Must(template.New("classify_system").Parse(classifySystemPromptTmpl))

// noMatchSentinel is the token the model must emit when no namespace covers
// the query
const noMatchSentinel = "NO_NAMESPACE_FOUND"

// classifyPromptData holds data for the classification system prompt template
type classifyPromptData struct {
	Namespaces []model.Descriptor
}

func renderClassifySystemPrompt(catalog *model.Catalog) (string, error) {
	var buf bytes.Buffer
	data := classifyPromptData{Namespaces: catalog.Descriptors()}
	if err := classifySystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render classification prompt template")
	}
	return buf.String(), nil
}

// Classify routes a query to at most one catalog namespace. The model
// response is parsed defensively: anything other than a known namespace ID
// resolves to unmatched rather than an error, and service failures resolve to
// unmatched with the failure attached so the caller can decide whether the
// session can continue.
func (uc *UseCases) Classify(ctx context.Context, query *model.Query) (model.Classification, error) {
	logger := logging.From(ctx)

	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(uc.classifySystemPrompt),
	)
	if err != nil {
		return model.ClassificationUnmatched(), wrapServiceError(err, "failed to create classification session",
			goerr.V("queryID", query.ID),
		)
	}

	resp, err := session.GenerateContent(ctx, gollem.Text("User Query: "+query.Text))
	if err != nil {
		return model.ClassificationUnmatched(), wrapServiceError(err, "classification request failed",
			goerr.V("queryID", query.ID),
		)
	}

	if len(resp.Texts) == 0 {
		logger.Warn("classifier returned no text", "queryID", query.ID)
		return model.ClassificationUnmatched(), nil
	}

	raw := strings.TrimSpace(resp.Texts[0])
	if strings.Contains(strings.ToUpper(raw), noMatchSentinel) {
		return model.ClassificationUnmatched(), nil
	}

	// The prompt demands a single token, but the model may still return a
	// comma or whitespace separated list; only the first token counts.
	token := firstToken(raw)
	if token == "" {
		logger.Warn("classifier returned empty response", "queryID", query.ID)
		return model.ClassificationUnmatched(), nil
	}

	id := types.NamespaceID(token)
	if _, ok := uc.catalog.Get(id); !ok {
		logger.Warn("classifier returned unknown namespace ID",
			"queryID", query.ID,
			"token", token,
		)
		return model.ClassificationUnmatched(), nil
	}

	return model.ClassificationMatched(id), nil
}

// firstToken extracts the first comma or whitespace separated token from s
func firstToken(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
