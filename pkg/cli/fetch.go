package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/derynLeigh/dependabot-service/pkg/cli/config"
	"github.com/derynLeigh/dependabot-service/pkg/infra"
	"github.com/derynLeigh/dependabot-service/pkg/infra/ghapp"
	"github.com/derynLeigh/dependabot-service/pkg/usecase"
	"github.com/derynLeigh/dependabot-service/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func fetchCommand() *cli.Command {
	var (
		githubApp config.GitHubApp
	)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Fetch dependabot PRs once and print them as JSON",
		Flags: slice.Flatten(
			githubApp.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting fetch",
				slog.Any("GitHubApp", githubApp),
			)

			ghApp, err := githubApp.New(ghapp.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}))
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithGitHubApp(ghApp)),
				usecase.WithTarget(githubApp.Owner(), githubApp.Repos()),
			)

			prs, err := uc.GetAllDependabotPRs(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch dependabot PRs")
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(prs); err != nil {
				return goerr.Wrap(err, "failed to encode PRs")
			}

			return nil
		},
	}
}
