package scope

import (
	"context"

	"lungtracker-srv/internal/model"
)

type payloadKey struct{}
type scopeKey struct{}

// SetPayloadToContext attaches the verified payload to the context.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, p)
}

// GetPayloadFromContext returns the payload attached to the context, if any.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}

// SetScopeToContext attaches the request scope to the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope attached to the context. Returns the
// zero scope when the request was not authenticated.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeKey{}).(model.Scope)
	return sc
}
