package core

import (
	"context"
	"sync"
	"testing"

	"github.com/mariam-attia/dealscore/schema"
	"github.com/stretchr/testify/assert"
)

func TestSourceFromContext(t *testing.T) {
	assert.Equal(t, schema.CLISource, SourceFromContext(context.Background()))
	assert.Equal(t, schema.HTTPSource, SourceFromContext(WithSource(context.Background(), schema.HTTPSource)))
	assert.Equal(t, schema.CLISource, SourceFromContext(WithSource(context.Background(), "")))

	// A foreign value under the same key string must not leak through.
	ctx := context.WithValue(context.Background(), contextKey("source"), "mcp")
	assert.Equal(t, schema.CLISource, SourceFromContext(ctx))
}

// TestContextConcurrentAccess tests that context values can be safely accessed concurrently.
func TestContextConcurrentAccess(t *testing.T) {
	ctx := WithSource(context.Background(), schema.MCPSource)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			assert.Equal(t, schema.MCPSource, SourceFromContext(ctx), "goroutine %d", i)
		})
	}
	wg.Wait()
}
