// Package ctxutil carries request-scoped values through context.Context.
// It has no internal dependencies so any layer can import it.
package ctxutil

import "context"

// ActorKey is the context key for the actor recorded in change history
// ("cli", "api").
type ActorKey struct{}

// WithActorID returns a context with the actor ID embedded.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actorID)
}

// ActorFromContext returns the actor ID from context, or empty string if not set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ActorKey{}).(string); ok {
		return v
	}
	return ""
}
