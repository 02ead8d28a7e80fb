package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/derynLeigh/dependabot-service/pkg/domain/model"
)

type UseCase interface {
	// GetDependabotPRs is the cache-fronted read path. Upstream listing
	// and token failures degrade to an empty result; they are never
	// returned to the caller.
	GetDependabotPRs(ctx context.Context, repo string) ([]*model.PullRequest, error)

	// GetAllDependabotPRs concatenates GetDependabotPRs over every
	// configured repository.
	GetAllDependabotPRs(ctx context.Context) ([]*model.PullRequest, error)

	// RefreshRepository fetches and caches one repository, propagating
	// every failure. This is the scheduler's path; batch retry depends
	// on seeing fetch errors.
	RefreshRepository(ctx context.Context, repo string) ([]*model.PullRequest, error)
}
