package errutil_test

import (
	"context"
	"testing"

	"github.com/derynLeigh/dependabot-service/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

func TestHandleError(t *testing.T) {
	// Sentry is not initialized in tests; HandleError must still log
	// without panicking.
	err := goerr.New("refresh failed", goerr.V("repo", "repo1"))
	errutil.HandleError(context.Background(), "test error", err)
}
