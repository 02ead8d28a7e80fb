package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/domain/interfaces"
	"github.com/derynLeigh/dependabot-service/pkg/domain/types"
	"github.com/derynLeigh/dependabot-service/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// Client talks to the upstream hosting API as a GitHub App. Every call
// mints a fresh app credential and exchanges it for a fresh
// installation token; neither is reused across calls.
type Client struct {
	installID  types.GitHubAppInstallID
	creds      *credentialSource
	httpClient *http.Client
	rawBaseURL string
	baseURL    *url.URL
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

// WithPrivateKey sets the inline PEM key material.
func WithPrivateKey(pem types.GitHubAppPrivateKey) Option {
	return func(x *Client) {
		x.creds.pem = pem
	}
}

// WithPrivateKeyFile sets a path to a PEM key file, read on every mint.
func WithPrivateKeyFile(path string) Option {
	return func(x *Client) {
		x.creds.pemFile = path
	}
}

// WithBaseURL points the client at a non-default API endpoint, such as
// a GitHub Enterprise server or a test server.
func WithBaseURL(raw string) Option {
	return func(x *Client) {
		x.rawBaseURL = raw
	}
}

// WithHTTPClient sets the base HTTP client carrying every API request,
// both token exchange and listing.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}

	client := &Client{
		installID:  installID,
		creds:      &credentialSource{appID: appID},
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.rawBaseURL != "" {
		raw := client.rawBaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		baseURL, err := url.Parse(raw)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid base URL",
				goerr.V("url", client.rawBaseURL),
			)
		}
		client.baseURL = baseURL
	}

	return client, nil
}

// MintAppJWT mints a signed app assertion valid from now to now plus
// ten minutes. Exposed for credential verification; normal callers go
// through CreateInstallationToken.
func (x *Client) MintAppJWT(now time.Time) (string, error) {
	return x.creds.mintJWT(now)
}

// CreateInstallationToken exchanges a freshly minted app credential for
// an installation-scoped access token. It never retries; batch retry is
// the refresh scheduler's job.
func (x *Client) CreateInstallationToken(ctx context.Context) (string, error) {
	assertion, err := x.creds.mintJWT(logging.CtxTime(ctx))
	if err != nil {
		return "", err
	}

	client := x.newAPIClient(ctx, assertion)
	token, _, err := client.Apps.CreateInstallationToken(ctx, int64(x.installID), nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create installation token",
			goerr.T(types.TokenExchangeTag),
			goerr.V("installID", x.installID),
		)
	}

	return token.GetToken(), nil
}

// ListOpenPullRequests returns every open pull request of the
// repository, paginated at 100 per page.
func (x *Client) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]*github.PullRequest, error) {
	accessToken, err := x.CreateInstallationToken(ctx)
	if err != nil {
		return nil, err
	}

	client := x.newAPIClient(ctx, accessToken)

	var allPRs []*github.PullRequest
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		prs, resp, err := client.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull requests",
				goerr.T(types.FetchTag),
				goerr.V("owner", owner),
				goerr.V("repo", repo),
			)
		}
		allPRs = append(allPRs, prs...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("listed open pull requests",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.Int("count", len(allPRs)),
	)

	return allPRs, nil
}

func (x *Client) newAPIClient(ctx context.Context, token string) *github.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}
