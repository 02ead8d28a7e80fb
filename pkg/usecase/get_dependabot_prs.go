package usecase

import (
	"context"
	"log/slog"

	"github.com/derynLeigh/dependabot-service/pkg/domain/model"
	"github.com/derynLeigh/dependabot-service/pkg/domain/types"
	"github.com/derynLeigh/dependabot-service/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// GetDependabotPRs returns the open dependency bot pull requests of one
// repository, fronted by the bounded cache. Upstream listing and token
// exchange failures degrade to an empty result, which is cached like
// any other; credential and conversion failures propagate.
func (x *UseCase) GetDependabotPRs(ctx context.Context, repo string) ([]*model.PullRequest, error) {
	if x.cache != nil {
		if prs, ok := x.cache.Get(repo); ok {
			return prs, nil
		}
	}

	prs, err := x.fetchDependabotPRs(ctx, repo)
	if err != nil {
		if !types.IsFetchError(err) && !types.IsTokenExchangeError(err) {
			return nil, err
		}

		logging.From(ctx).Error("failed to fetch pull requests, degrading to empty result",
			slog.String("repo", repo),
			slog.Any("error", err),
		)
		prs = []*model.PullRequest{}
	}

	if x.cache != nil {
		x.cache.Put(repo, prs)
	}

	return prs, nil
}

// GetAllDependabotPRs concatenates GetDependabotPRs over every
// configured repository.
func (x *UseCase) GetAllDependabotPRs(ctx context.Context) ([]*model.PullRequest, error) {
	allPRs := []*model.PullRequest{}
	for _, repo := range x.repos {
		prs, err := x.GetDependabotPRs(ctx, repo)
		if err != nil {
			return nil, err
		}
		allPRs = append(allPRs, prs...)
	}

	return allPRs, nil
}

// RefreshRepository fetches one repository and replaces its cache
// entry. Unlike the read path it absorbs nothing: the refresh scheduler
// retries the whole batch on any failure, so every error class must
// reach it.
func (x *UseCase) RefreshRepository(ctx context.Context, repo string) ([]*model.PullRequest, error) {
	prs, err := x.fetchDependabotPRs(ctx, repo)
	if err != nil {
		return nil, err
	}

	if x.cache != nil {
		x.cache.Put(repo, prs)
	}

	return prs, nil
}

func (x *UseCase) fetchDependabotPRs(ctx context.Context, repo string) ([]*model.PullRequest, error) {
	logging.From(ctx).Debug("fetching pull requests",
		slog.String("owner", x.owner),
		slog.String("repo", repo),
	)

	raw, err := x.clients.GitHubApp().ListOpenPullRequests(ctx, x.owner, repo)
	if err != nil {
		return nil, err
	}

	prs := []*model.PullRequest{}
	for _, pr := range raw {
		if !x.isDependabotPR(ctx, pr) {
			continue
		}

		converted, err := convertPullRequest(pr, repo)
		if err != nil {
			return nil, err
		}
		prs = append(prs, converted)
	}

	return prs, nil
}

// isDependabotPR reports whether the pull request was opened by the
// dependency bot. A pull request whose author cannot be read is logged
// and treated as non-matching rather than failing the whole fetch.
func (x *UseCase) isDependabotPR(ctx context.Context, pr *github.PullRequest) bool {
	if pr.GetUser() == nil || pr.GetUser().Login == nil {
		logging.From(ctx).Warn("pull request has no author, skipping",
			slog.Int("number", pr.GetNumber()),
		)
		return false
	}

	return model.IsDependabotAuthor(pr.GetUser().GetLogin())
}

// convertPullRequest builds the canonical record from upstream
// metadata. Missing required fields abort the whole call with a
// conversion error; the read path does not absorb these.
func convertPullRequest(pr *github.PullRequest, repo string) (*model.PullRequest, error) {
	if pr.Number == nil || pr.Title == nil {
		return nil, goerr.New("pull request metadata is incomplete",
			goerr.T(types.ConversionTag),
			goerr.V("repo", repo),
			goerr.V("id", pr.GetID()),
		)
	}

	title := pr.GetTitle()

	return &model.PullRequest{
		Number:          pr.GetNumber(),
		ID:              pr.GetID(),
		Title:           title,
		Author:          pr.GetUser().GetLogin(),
		Repository:      repo,
		URL:             pr.GetHTMLURL(),
		State:           convertState(pr),
		CreatedAt:       pr.GetCreatedAt().Time,
		UpdatedAt:       pr.GetUpdatedAt().Time,
		Dependency:      model.ExtractDependency(title),
		CurrentVersion:  model.ExtractCurrentVersion(title),
		ProposedVersion: model.ExtractProposedVersion(title),
		Body:            pr.GetBody(),
		Commits:         pr.GetCommits(),
		FilesChanged:    pr.GetChangedFiles(),
		HasConflicts:    pr.Mergeable != nil && !pr.GetMergeable(),
	}, nil
}

func convertState(pr *github.PullRequest) types.PullRequestState {
	if pr.MergedAt != nil {
		return types.PullRequestMerged
	}
	if pr.GetState() == "closed" {
		return types.PullRequestClosed
	}
	return types.PullRequestOpen
}
