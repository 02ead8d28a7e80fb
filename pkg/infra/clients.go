package infra

import (
	"github.com/derynLeigh/dependabot-service/pkg/domain/interfaces"
)

type Clients struct {
	githubApp interfaces.GitHubApp
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}
