package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubApp

import (
	"context"

	"github.com/google/go-github/v53/github"
)

// GitHubApp is the upstream hosting API boundary. ListOpenPullRequests
// mints a fresh app credential and exchanges it for a fresh installation
// token on every call before listing, so callers never hold credentials.
type GitHubApp interface {
	ListOpenPullRequests(ctx context.Context, owner, repo string) ([]*github.PullRequest, error)
}
