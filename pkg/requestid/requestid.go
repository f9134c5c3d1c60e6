// Package requestid carries the per-request id through a context so the
// access log, service logs and history rows share it.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored by WithID, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Ensure returns the id carried by ctx, minting one for callers outside
// an HTTP request such as the CLI.
func Ensure(ctx context.Context) string {
	if id := FromContext(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
