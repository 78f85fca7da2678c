package jsonfile

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seido-lab/chiron/pkg/domain/interfaces"
	"github.com/seido-lab/chiron/pkg/domain/model"
	"github.com/seido-lab/chiron/pkg/domain/types"
	"github.com/seido-lab/chiron/pkg/utils/safe"
)

// Source loads a knowledge catalog from a static JSON document. The document
// holds an array of namespace entries under a top-level "namespaces" key
// (legacy documents use "dataset" instead). Each entry carries at least
// namespace_id, title and description; the whole entry is kept as the
// namespace content body.
type Source struct {
	path string
}

var _ interfaces.CatalogSource = &Source{}

// New creates a Source reading from path
func New(path string) *Source {
	return &Source{path: path}
}

// document is the top-level shape of the knowledge file
type document struct {
	Namespaces []json.RawMessage `json:"namespaces"`
	Dataset    []json.RawMessage `json:"dataset"`
}

// entryHeader is the descriptor part of a namespace entry
type entryHeader struct {
	NamespaceID string `json:"namespace_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Load reads and parses the knowledge document into a catalog
func (s *Source) Load(ctx context.Context) (*model.Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open knowledge file", goerr.V("path", s.path))
	}
	defer safe.Close(ctx, f)

	var doc document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse knowledge file", goerr.V("path", s.path))
	}

	entries := doc.Namespaces
	if len(entries) == 0 {
		entries = doc.Dataset
	}
	if len(entries) == 0 {
		return nil, goerr.New("knowledge file has no namespaces", goerr.V("path", s.path))
	}

	namespaces := make([]*model.Namespace, 0, len(entries))
	for i, raw := range entries {
		var header entryHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, goerr.Wrap(err, "failed to parse namespace entry",
				goerr.V("path", s.path),
				goerr.V("index", i),
			)
		}

		id := types.NamespaceID(header.NamespaceID)
		if err := id.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid namespace entry",
				goerr.V("path", s.path),
				goerr.V("index", i),
			)
		}

		namespaces = append(namespaces, &model.Namespace{
			Descriptor: model.Descriptor{
				ID:      id,
				Title:   header.Title,
				Summary: header.Description,
			},
			Content: model.Content{
				ID:   id,
				Body: raw,
			},
		})
	}

	return model.NewCatalog(namespaces...)
}
