package context

import (
	"context"

	"columbus/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated caller.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the authenticated caller in echo.Context and in the
// request's context.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the authenticated caller, or nil on public routes.
func GetIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity); ok {
		return identity
	}

	return nil
}

// WithIdentity returns a new context with the authenticated caller.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentityFromContext extracts the authenticated caller from context.Context.
func GetIdentityFromContext(ctx context.Context) *entity.Identity {
	identity, _ := valueOf[*entity.Identity](ctx, KeyIdentity)

	return identity
}
