package config

import (
	"log/slog"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/controller/scheduler"
	"github.com/derynLeigh/dependabot-service/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

type Scheduler struct {
	enabled        bool
	cron           string
	maxRetries     int64
	retryDelayMSec int64
}

func (x *Scheduler) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "scheduler-enabled",
			Usage:       "Enable the cron-driven PR cache refresh",
			Category:    "Scheduler",
			Destination: &x.enabled,
			Sources:     cli.EnvVars("DEPENDABOT_SCHEDULER_ENABLED"),
		},
		&cli.StringFlag{
			Name:        "scheduler-cron",
			Usage:       "Cron expression for the refresh cycle",
			Category:    "Scheduler",
			Destination: &x.cron,
			Sources:     cli.EnvVars("DEPENDABOT_SCHEDULER_CRON"),
			Value:       scheduler.DefaultCron,
		},
		&cli.Int64Flag{
			Name:        "scheduler-max-retries",
			Usage:       "Additional batch attempts after a failed refresh",
			Category:    "Scheduler",
			Destination: &x.maxRetries,
			Sources:     cli.EnvVars("DEPENDABOT_SCHEDULER_MAX_RETRIES"),
			Value:       scheduler.DefaultMaxRetries,
		},
		&cli.Int64Flag{
			Name:        "scheduler-retry-delay-ms",
			Usage:       "Wait between batch attempts in milliseconds",
			Category:    "Scheduler",
			Destination: &x.retryDelayMSec,
			Sources:     cli.EnvVars("DEPENDABOT_SCHEDULER_RETRY_DELAY_MS"),
			Value:       int64(scheduler.DefaultRetryDelay / time.Millisecond),
		},
	}
}

func (x Scheduler) Enabled() bool {
	return x.enabled
}

func (x Scheduler) New(uc interfaces.UseCase, cache interfaces.PRCache, repos []string) *scheduler.Scheduler {
	return scheduler.New(uc, cache, repos,
		scheduler.WithCron(x.cron),
		scheduler.WithMaxRetries(int(x.maxRetries)),
		scheduler.WithRetryDelay(time.Duration(x.retryDelayMSec)*time.Millisecond),
	)
}

func (x Scheduler) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", x.enabled),
		slog.String("cron", x.cron),
		slog.Int64("maxRetries", x.maxRetries),
		slog.Int64("retryDelayMs", x.retryDelayMSec),
	)
}
