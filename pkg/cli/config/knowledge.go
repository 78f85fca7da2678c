package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seido-lab/chiron/pkg/domain/interfaces"
	"github.com/seido-lab/chiron/pkg/repository/jsonfile"
	"github.com/urfave/cli/v3"
)

// Knowledge holds configuration for the knowledge store
type Knowledge struct {
	path string
}

// Flags returns CLI flags for knowledge store configuration
func (k *Knowledge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "knowledge-path",
			Usage:       "Path to the knowledge base JSON document",
			Value:       "dummy_data.json",
			Sources:     cli.EnvVars("CHIRON_KNOWLEDGE_PATH"),
			Destination: &k.path,
		},
	}
}

// Configure returns the catalog source for the configured knowledge file
func (k *Knowledge) Configure(ctx context.Context) (interfaces.CatalogSource, error) {
	if k.path == "" {
		return nil, goerr.Wrap(ErrKnowledgePathUnset, "set --knowledge-path or CHIRON_KNOWLEDGE_PATH")
	}
	return jsonfile.New(k.path), nil
}
