package graph

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/executor"
	"github.com/99designs/gqlgen/graphql/handler/extension"
)

// Execute runs a single operation in-process, without an HTTP transport.
// Parse and validation failures come back as the response's errors, with no data.
func Execute(ctx context.Context, es graphql.ExecutableSchema, params *graphql.RawParams) *graphql.Response {
	exec := executor.New(es)
	exec.Use(extension.Introspection{})

	ctx = graphql.StartOperationTrace(ctx)
	opCtx, errs := exec.CreateOperationContext(ctx, params)
	if errs != nil {
		return &graphql.Response{Errors: errs}
	}

	ctx = graphql.WithOperationContext(ctx, opCtx)
	handler, ctx := exec.DispatchOperation(ctx, opCtx)
	return handler(ctx)
}
