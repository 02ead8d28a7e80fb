package config

import (
	"log/slog"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

type Cache struct {
	ttlMilliSec int64
	maxEntries  int64
}

func (x *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "cache-ttl-ms",
			Usage:       "PR cache entry lifetime in milliseconds",
			Category:    "Cache",
			Destination: &x.ttlMilliSec,
			Sources:     cli.EnvVars("DEPENDABOT_CACHE_TTL_MS"),
			Value:       int64(memory.DefaultTTL / time.Millisecond),
		},
		&cli.Int64Flag{
			Name:        "cache-max-entries",
			Usage:       "Maximum number of repositories kept in the PR cache",
			Category:    "Cache",
			Destination: &x.maxEntries,
			Sources:     cli.EnvVars("DEPENDABOT_CACHE_MAX_ENTRIES"),
			Value:       memory.DefaultMaxEntries,
		},
	}
}

func (x Cache) New() *memory.Cache {
	return memory.NewCache(
		time.Duration(x.ttlMilliSec)*time.Millisecond,
		int(x.maxEntries),
	)
}

func (x Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ttlMs", x.ttlMilliSec),
		slog.Int64("maxEntries", x.maxEntries),
	)
}
