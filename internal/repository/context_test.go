package repository_test

import (
	"context"
	"testing"
)

// testContext mirrors testing.T.Context (Go 1.24+): a context canceled
// just before the test's Cleanup-registered functions run.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
