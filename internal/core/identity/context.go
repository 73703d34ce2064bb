package identity

import "context"

type identityContextKey struct{}

var ctxKey = identityContextKey{}

// NewContext は Identity をコンテキストに格納します。
func NewContext(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, ctxKey, ident)
}

// FromContext はコンテキストから Identity を取り出します。
func FromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	ident, ok := ctx.Value(ctxKey).(Identity)
	return ident, ok
}
