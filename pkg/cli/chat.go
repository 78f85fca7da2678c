package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seido-lab/chiron/pkg/cli/config"
	"github.com/seido-lab/chiron/pkg/usecase"
	"github.com/seido-lab/chiron/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// apologyAnswer is shown when a single query fails without ending the session
const apologyAnswer = "Sorry, something went wrong while answering that question. Please try again."

func cmdChat() *cli.Command {
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
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Answer questions interactively until an exit token",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
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

			return runChatLoop(ctx, uc, appConfig, os.Stdin)
		},
	}
}

// runChatLoop processes queries from r one at a time. Per-query failures are
// reported and absorbed; permanent service failures end the session.
func runChatLoop(ctx context.Context, uc *usecase.UseCases, appConfig *config.AppConfig, r io.Reader) error {
	logger := logging.From(ctx)
	out := os.Stdout

	printNotice(out, "chiron - Interactive Mode")
	printNotice(out, "Type '%s' to quit", appConfig.Chat.ExitTokens[0])

	scanner := bufio.NewScanner(r)
	for {
		promptColor.Fprint(out, appConfig.Chat.Prompt)
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if appConfig.IsExitToken(line) {
			printNotice(out, "%s", appConfig.Chat.Farewell)
			return nil
		}

		answer, err := uc.Handle(ctx, line)
		if err != nil {
			if errors.Is(err, usecase.ErrEmptyInput) {
				continue
			}
			if usecase.IsPermanent(err) {
				return goerr.Wrap(err, "generation service rejected the session")
			}
			logger.Warn("query failed", "error", err.Error())
			printNotice(out, "%s", apologyAnswer)
			continue
		}

		printAnswer(out, answer)
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read input")
	}

	printNotice(out, "%s", appConfig.Chat.Farewell)
	return nil
}
