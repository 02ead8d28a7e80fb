package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/derynLeigh/dependabot-service/pkg/cli/config"
	"github.com/derynLeigh/dependabot-service/pkg/controller/server"
	"github.com/derynLeigh/dependabot-service/pkg/infra"
	"github.com/derynLeigh/dependabot-service/pkg/infra/ghapp"
	"github.com/derynLeigh/dependabot-service/pkg/usecase"
	"github.com/derynLeigh/dependabot-service/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		cacheCfg  config.Cache
		schedCfg  config.Scheduler
		sentryCfg config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8080",
			Sources:     cli.EnvVars("DEPENDABOT_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			cacheCfg.Flags(),
			schedCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Cache", cacheCfg),
				slog.Any("Scheduler", schedCfg),
				slog.Any("Sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New(ghapp.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}))
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithGitHubApp(ghApp))

			cache := cacheCfg.New()
			uc := usecase.New(clients,
				usecase.WithCache(cache),
				usecase.WithTarget(githubApp.Owner(), githubApp.Repos()),
			)

			serverOptions := []server.Option{}
			if schedCfg.Enabled() {
				sched := schedCfg.New(uc, cache, uc.Repositories())
				if err := sched.Start(ctx); err != nil {
					return err
				}
				defer sched.Stop()

				serverOptions = append(serverOptions, server.WithSchedulerStats(sched.Stats))
			}

			s := server.New(uc, serverOptions...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
