package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seido-lab/chiron/pkg/cli/config"
	"github.com/seido-lab/chiron/pkg/usecase"
	"github.com/seido-lab/chiron/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdAsk() *cli.Command {
	var timeout time.Duration
	var appCfg config.App
	var geminiCfg config.Gemini
	var knowledgeCfg config.Knowledge

	flags := []cli.Flag{
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Per-query timeout for generation calls (0 disables)",
			Sources:     cli.EnvVars("CHIRON_TIMEOUT"),
			Destination: &timeout,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)

	return &cli.Command{
		Name:      "ask",
		Aliases:   []string{"a"},
		Usage:     "Answer a single question and exit",
		ArgsUsage: "<question>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")

			appConfig, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			source, err := knowledgeCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure knowledge store")
			}

			catalog, err := source.Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load knowledge catalog")
			}
			logging.Default().Info("Knowledge catalog loaded", "namespaces", catalog.Len())

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize Gemini client")
			}

			uc, err := usecase.New(llmClient, catalog,
				usecase.WithFallbackAnswer(appConfig.Answer.OutOfDomain),
				usecase.WithTimeout(timeout),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize pipeline")
			}

			answer, err := uc.Handle(ctx, query)
			if err != nil {
				return goerr.Wrap(err, "query failed")
			}

			printAnswer(os.Stdout, answer)
			return nil
		},
	}
}
