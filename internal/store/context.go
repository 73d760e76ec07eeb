package store

import (
	"context"
	"errors"
)

// ErrNoStore is the panic value of MustFromContext outside a provisioned scope.
var ErrNoStore = errors.New("store: no theme store in context; wrap the caller with store.WithStore")

type contextKey struct{}

// WithStore returns a child context that provides s to everything below it.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// Provide creates a store from opts and scopes it to the returned context.
func Provide(ctx context.Context, opts ...Option) (context.Context, *Store) {
	s := New(opts...)
	return WithStore(ctx, s), s
}

// FromContext returns the store provisioned in ctx, if any.
func FromContext(ctx context.Context) (*Store, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(contextKey{}).(*Store)
	return s, ok && s != nil
}

// MustFromContext returns the provisioned store and panics when there is none.
// Reaching for the store outside its scope is a wiring bug, not a runtime condition.
func MustFromContext(ctx context.Context) *Store {
	s, ok := FromContext(ctx)
	if !ok {
		panic(ErrNoStore)
	}
	return s
}
