package core

import (
	"context"

	"github.com/mariam-attia/dealscore/schema"
)

// Context keys for evaluation options
type contextKey string

const sourceKey contextKey = "source"

// WithSource records which surface triggered an evaluation.
func WithSource(ctx context.Context, source schema.Source) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// SourceFromContext returns the evaluation source from context
func SourceFromContext(ctx context.Context) schema.Source {
	val := ctx.Value(sourceKey)
	if val == nil {
		return schema.CLISource // default: command line
	}
	source, ok := val.(schema.Source)
	if !ok || source == "" {
		return schema.CLISource
	}
	return source
}
