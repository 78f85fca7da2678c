package memory

import (
	"context"

	"github.com/seido-lab/chiron/pkg/domain/interfaces"
	"github.com/seido-lab/chiron/pkg/domain/model"
)

// Source is an in-memory catalog source for tests and local experiments
type Source struct {
	namespaces []*model.Namespace
}

var _ interfaces.CatalogSource = &Source{}

// New creates a Source serving the given namespaces
func New(namespaces ...*model.Namespace) *Source {
	return &Source{namespaces: namespaces}
}

// Load builds a catalog from the configured namespaces
func (s *Source) Load(ctx context.Context) (*model.Catalog, error) {
	return model.NewCatalog(s.namespaces...)
}
