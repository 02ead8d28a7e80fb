package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/domain/interfaces"
	"github.com/derynLeigh/dependabot-service/pkg/domain/types"
	"github.com/derynLeigh/dependabot-service/pkg/utils/errutil"
	"github.com/derynLeigh/dependabot-service/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/robfig/cron/v3"
)

const (
	DefaultCron       = "0 7 * * *"
	DefaultMaxRetries = 3
	DefaultRetryDelay = 5000 * time.Millisecond
)

// Stats is the execution bookkeeping of the refresh scheduler. The
// counter increments on every firing; time and duration are updated
// only by successful cycles. Reset only by process restart.
type Stats struct {
	ExecutionCount        int           `json:"executionCount"`
	LastExecutionTime     time.Time     `json:"lastExecutionTime"`
	LastExecutionDuration time.Duration `json:"lastExecutionDuration"`
}

// Scheduler periodically evicts the bounded cache and repopulates it by
// refreshing every configured repository. A failure anywhere in the
// batch restarts the whole batch, up to the retry budget. Failed cycles
// are logged and absorbed; the schedule itself never stops because a
// cycle failed.
type Scheduler struct {
	uc         interfaces.UseCase
	cache      interfaces.PRCache
	repos      []string
	cronSpec   string
	maxRetries int
	retryDelay time.Duration
	cron       *cron.Cron

	mu    sync.Mutex
	stats Stats
}

type Option func(*Scheduler)

// WithCron sets the firing schedule, a standard 5-field cron expression.
func WithCron(spec string) Option {
	return func(x *Scheduler) {
		x.cronSpec = spec
	}
}

// WithMaxRetries sets how many additional batch attempts follow a
// failed one within a single cycle.
func WithMaxRetries(n int) Option {
	return func(x *Scheduler) {
		x.maxRetries = n
	}
}

// WithRetryDelay sets the fixed wait between batch attempts. The wait
// blocks only the scheduler's own goroutine.
func WithRetryDelay(d time.Duration) Option {
	return func(x *Scheduler) {
		x.retryDelay = d
	}
}

func New(uc interfaces.UseCase, cache interfaces.PRCache, repos []string, options ...Option) *Scheduler {
	s := &Scheduler{
		uc:         uc,
		cache:      cache,
		repos:      repos,
		cronSpec:   DefaultCron,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range options {
		opt(s)
	}

	return s
}

// Start registers the refresh cycle with the cron runner and begins
// firing. The given context is inherited by every cycle.
func (x *Scheduler) Start(ctx context.Context) error {
	runner := cron.New()
	if _, err := runner.AddFunc(x.cronSpec, func() {
		x.RunCycle(ctx)
	}); err != nil {
		return goerr.Wrap(types.ErrInvalidOption, "invalid cron expression",
			goerr.V("cron", x.cronSpec),
		)
	}

	runner.Start()
	x.cron = runner

	logging.From(ctx).Info("PR refresh scheduler started",
		slog.String("cron", x.cronSpec),
		slog.Int("repos", len(x.repos)),
		slog.Int("maxRetries", x.maxRetries),
		slog.Duration("retryDelay", x.retryDelay),
	)

	return nil
}

// Stop halts the schedule and waits for a running cycle to finish.
func (x *Scheduler) Stop() {
	if x.cron != nil {
		<-x.cron.Stop().Done()
	}
}

// Stats returns a snapshot of the execution bookkeeping.
func (x *Scheduler) Stats() Stats {
	x.mu.Lock()
	defer x.mu.Unlock()

	return x.stats
}

// RunCycle executes one full refresh: evict, then repopulate every
// configured repository with batch-level retry. Failures are reported
// and absorbed here; nothing propagates to the caller.
func (x *Scheduler) RunCycle(ctx context.Context) {
	x.mu.Lock()
	x.stats.ExecutionCount++
	execution := x.stats.ExecutionCount
	x.mu.Unlock()

	startTime := time.Now()
	logging.From(ctx).Info("starting scheduled PR refresh",
		slog.Int("execution", execution),
	)

	x.cache.EvictAll()

	totalPRs, retries, err := x.refreshAllRepositories(ctx)
	if err != nil {
		errutil.HandleError(ctx, "scheduled PR refresh failed", goerr.Wrap(err, "refresh cycle failed",
			goerr.V("execution", execution),
			goerr.V("elapsed", time.Since(startTime)),
		))
		return
	}

	duration := time.Since(startTime)

	x.mu.Lock()
	x.stats.LastExecutionTime = startTime
	x.stats.LastExecutionDuration = duration
	x.mu.Unlock()

	attrs := []any{
		slog.Int("execution", execution),
		slog.Int("totalPRs", totalPRs),
		slog.Duration("duration", duration),
	}
	if retries > 0 {
		attrs = append(attrs, slog.Int("retries", retries))
	}
	logging.From(ctx).Info("scheduled PR refresh completed", attrs...)
}

// refreshAllRepositories drives the whole batch, restarting from the
// first repository on any failure. Returns the total PR count and how
// many retries were needed.
func (x *Scheduler) refreshAllRepositories(ctx context.Context) (int, int, error) {
	var lastErr error

	for attempt := 0; attempt <= x.maxRetries; attempt++ {
		if attempt > 0 {
			logging.From(ctx).Warn("refresh attempt failed, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("delay", x.retryDelay),
				slog.Any("error", lastErr),
			)

			select {
			case <-time.After(x.retryDelay):
			case <-ctx.Done():
				return 0, attempt, goerr.Wrap(ctx.Err(), "retry delay interrupted")
			}
		}

		totalPRs := 0
		var batchErr error
		for _, repo := range x.repos {
			prs, err := x.uc.RefreshRepository(ctx, repo)
			if err != nil {
				batchErr = goerr.Wrap(err, "failed to refresh repository", goerr.V("repo", repo))
				break
			}
			totalPRs += len(prs)
		}

		if batchErr == nil {
			if attempt > 0 {
				logging.From(ctx).Info("refresh succeeded after retries",
					slog.Int("retries", attempt),
				)
			}
			return totalPRs, attempt, nil
		}
		lastErr = batchErr
	}

	return 0, x.maxRetries, goerr.Wrap(lastErr, "all refresh attempts exhausted",
		goerr.V("maxRetries", x.maxRetries),
	)
}
