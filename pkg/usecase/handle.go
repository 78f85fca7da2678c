package usecase

import (
	"context"

	"github.com/seido-lab/chiron/pkg/domain/model"
	"github.com/seido-lab/chiron/pkg/utils/logging"
)

// Handle runs a raw input through the full pipeline: intake, classification,
// then synthesis. On an unmatched classification it returns the canned
// out-of-domain answer without consulting the generation service again.
func (uc *UseCases) Handle(ctx context.Context, raw string) (*model.Answer, error) {
	query, err := uc.Accept(raw)
	if err != nil {
		return nil, err
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	logger := logging.From(ctx)

	classification, err := uc.Classify(ctx, query)
	if err != nil {
		if IsPermanent(err) {
			return nil, err
		}
		// Transient classification failures are absorbed: the query is
		// answered as out of domain and the session continues.
		logger.Warn("classification failed, treating query as out of domain",
			"queryID", query.ID,
			"error", err.Error(),
		)
	}

	if !classification.Matched {
		return &model.Answer{Text: uc.fallbackAnswer}, nil
	}

	ns, ok := uc.catalog.Get(classification.ID)
	if !ok {
		// Classify only returns IDs present in the catalog; guard anyway
		logger.Warn("classified namespace missing from catalog", "namespaceID", classification.ID)
		return &model.Answer{Text: uc.fallbackAnswer}, nil
	}

	logger.Info("query routed",
		"queryID", query.ID,
		"namespaceID", ns.Descriptor.ID,
		"title", ns.Descriptor.Title,
	)

	return uc.Synthesize(ctx, query, ns)
}
