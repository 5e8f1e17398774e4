package auth

import "context"

type contextKey struct{}

// Identity is the caller attached to a request by the Authenticate middleware.
type Identity struct {
	CustomerID string
	Email      string
	Role       string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// GetCustomerID helper for call sites that only need the caller id.
func GetCustomerID(ctx context.Context) string {
	if id, ok := FromContext(ctx); ok {
		return id.CustomerID
	}
	return ""
}
