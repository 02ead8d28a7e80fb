package testutil_test

import (
	"testing"

	"github.com/derynLeigh/dependabot-service/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("TESTUTIL_PROBE", "value")
		gt.V(t, testutil.GetEnvOrSkip(t, "TESTUTIL_PROBE")).Equal("value")
	})
}
