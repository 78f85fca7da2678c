package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seido-lab/chiron/pkg/domain/types"
)

// Descriptor is the lightweight catalog entry used to build classification
// prompts. It never carries the content payload itself.
type Descriptor struct {
	ID      types.NamespaceID
	Title   string
	Summary string
}

// Content holds the full knowledge payload of a namespace. Body is the raw
// document entry and is embedded verbatim into synthesis prompts.
type Content struct {
	ID   types.NamespaceID
	Body json.RawMessage
}

// Namespace pairs a descriptor with its content payload
type Namespace struct {
	Descriptor Descriptor
	Content    Content
}

// Catalog is the read-only set of namespaces known to the process. It keeps
// document order so classification prompts enumerate namespaces the same way
// on every run.
type Catalog struct {
	namespaces []*Namespace
	index      map[types.NamespaceID]*Namespace
}

// NewCatalog builds a Catalog from namespaces, validating each ID and
// rejecting duplicates
func NewCatalog(namespaces ...*Namespace) (*Catalog, error) {
	c := &Catalog{
		namespaces: make([]*Namespace, 0, len(namespaces)),
		index:      make(map[types.NamespaceID]*Namespace, len(namespaces)),
	}

	for _, ns := range namespaces {
		if err := ns.Descriptor.ID.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid namespace ID in catalog")
		}
		if _, exists := c.index[ns.Descriptor.ID]; exists {
			return nil, goerr.New("duplicate namespace ID in catalog", goerr.V("id", ns.Descriptor.ID))
		}
		c.namespaces = append(c.namespaces, ns)
		c.index[ns.Descriptor.ID] = ns
	}

	return c, nil
}

// Get looks up a namespace by ID
func (c *Catalog) Get(id types.NamespaceID) (*Namespace, bool) {
	ns, ok := c.index[id]
	return ns, ok
}

// Descriptors returns all descriptors in document order
func (c *Catalog) Descriptors() []Descriptor {
	descriptors := make([]Descriptor, 0, len(c.namespaces))
	for _, ns := range c.namespaces {
		descriptors = append(descriptors, ns.Descriptor)
	}
	return descriptors
}

// Len returns the number of namespaces in the catalog
func (c *Catalog) Len() int {
	return len(c.namespaces)
}
