package config

import (
	"log/slog"

	"github.com/derynLeigh/dependabot-service/pkg/domain/types"
	"github.com/derynLeigh/dependabot-service/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id             types.GitHubAppID
	installID      types.GitHubAppInstallID
	privateKey     types.GitHubAppPrivateKey `masq:"secret"`
	privateKeyFile string
	owner          string
	repos          []string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("DEPENDABOT_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App Installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("DEPENDABOT_GITHUB_APP_INSTALLATION_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM, PKCS#1 or PKCS#8)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("DEPENDABOT_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key-file",
			Usage:       "Path to GitHub App Private Key file, used when no inline key is given",
			Category:    "GitHub App",
			Destination: &x.privateKeyFile,
			Sources:     cli.EnvVars("DEPENDABOT_GITHUB_APP_PRIVATE_KEY_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "GitHub user or organization that owns the watched repositories",
			Category:    "GitHub App",
			Destination: &x.owner,
			Sources:     cli.EnvVars("DEPENDABOT_GITHUB_OWNER"),
			Required:    true,
		},
		&cli.StringSliceFlag{
			Name:        "github-repos",
			Usage:       "Repository names to watch for dependabot PRs",
			Category:    "GitHub App",
			Destination: &x.repos,
			Sources:     cli.EnvVars("DEPENDABOT_GITHUB_REPOS"),
			Required:    true,
		},
	}
}

func (x GitHubApp) New(options ...ghapp.Option) (*ghapp.Client, error) {
	options = append([]ghapp.Option{
		ghapp.WithPrivateKey(x.privateKey),
		ghapp.WithPrivateKeyFile(x.privateKeyFile),
	}, options...)
	return ghapp.New(x.id, x.installID, options...)
}

func (x GitHubApp) Owner() string {
	return x.owner
}

func (x GitHubApp) Repos() []string {
	return x.repos
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("privateKeyFile", x.privateKeyFile),
		slog.String("owner", x.owner),
		slog.Any("repos", x.repos),
	)
}
