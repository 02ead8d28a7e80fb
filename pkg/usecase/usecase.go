package usecase

import (
	"github.com/derynLeigh/dependabot-service/pkg/domain/interfaces"
	"github.com/derynLeigh/dependabot-service/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	cache   interfaces.PRCache
	owner   string
	repos   []string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithCache sets the bounded cache fronting upstream fetches.
func WithCache(cache interfaces.PRCache) Option {
	return func(x *UseCase) {
		x.cache = cache
	}
}

// WithTarget sets the repository owner and the monitored repositories.
func WithTarget(owner string, repos []string) Option {
	return func(x *UseCase) {
		x.owner = owner
		x.repos = repos
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}
	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// Repositories returns the configured repository names.
func (x *UseCase) Repositories() []string {
	return x.repos
}
