package config_test

import (
	"context"
	"testing"

	"github.com/derynLeigh/dependabot-service/pkg/cli/config"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

func TestGitHubAppFlags(t *testing.T) {
	ghConfig := &config.GitHubApp{}
	flags := ghConfig.Flags()

	gt.V(t, len(flags)).Equal(6)

	names := flagNames(flags)
	gt.True(t, names["github-app-id"])
	gt.True(t, names["github-app-installation-id"])
	gt.True(t, names["github-app-private-key"])
	gt.True(t, names["github-app-private-key-file"])
	gt.True(t, names["github-owner"])
	gt.True(t, names["github-repos"])
}

func TestCacheFlags(t *testing.T) {
	cacheConfig := &config.Cache{}
	flags := cacheConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := flagNames(flags)
	gt.True(t, names["cache-ttl-ms"])
	gt.True(t, names["cache-max-entries"])
}

func TestCacheDefaults(t *testing.T) {
	var cacheConfig config.Cache

	cmd := &cli.Command{
		Flags: cacheConfig.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))

	cache := cacheConfig.New()
	gt.V(t, cache).NotEqual(nil)
	gt.V(t, cache.Len()).Equal(0)
}

func TestSchedulerFlags(t *testing.T) {
	schedConfig := &config.Scheduler{}
	flags := schedConfig.Flags()

	gt.V(t, len(flags)).Equal(4)

	names := flagNames(flags)
	gt.True(t, names["scheduler-enabled"])
	gt.True(t, names["scheduler-cron"])
	gt.True(t, names["scheduler-max-retries"])
	gt.True(t, names["scheduler-retry-delay-ms"])
}

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := flagNames(flags)
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
}
