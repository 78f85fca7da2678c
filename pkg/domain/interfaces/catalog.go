package interfaces

import (
	"context"

	"github.com/seido-lab/chiron/pkg/domain/model"
)

// CatalogSource supplies the knowledge catalog. It is invoked once at process
// start; the returned catalog is treated as read-only afterward.
type CatalogSource interface {
	Load(ctx context.Context) (*model.Catalog, error)
}
