package graph

import "github.com/hmans/gradebook/internal/store"

//go:generate go tool gqlgen generate

// Resolver is the root resolver for the GraphQL schema.
// It holds the Store every field reads from and writes to.
type Resolver struct {
	Store *store.Store
}

// NewResolver creates a resolver backed by s.
func NewResolver(s *store.Store) *Resolver {
	return &Resolver{Store: s}
}

// optionalID unwraps an optional id argument for logging.
func optionalID(id *int) any {
	if id == nil {
		return nil
	}
	return *id
}
