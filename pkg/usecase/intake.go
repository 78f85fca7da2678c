package usecase

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seido-lab/chiron/pkg/domain/model"
)

// Accept normalizes raw input into a Query. It trims surrounding whitespace
// and rejects blank input; all intent interpretation is left to Classify.
func (uc *UseCases) Accept(raw string) (*model.Query, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, goerr.Wrap(ErrEmptyInput, "input is blank")
	}
	return model.NewQuery(text), nil
}
