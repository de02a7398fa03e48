package farm

import "context"

type callerKey struct{}

// WithCaller records the authenticated acting identity on ctx.
func WithCaller(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, callerKey{}, playerID)
}

// CallerFromContext returns the acting identity, if any.
func CallerFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callerKey{}).(string)
	return id, ok && id != ""
}
