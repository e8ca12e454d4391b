package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/wesplit/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// ScreenIDKey is the context key for the screen named by a validated token.
const ScreenIDKey contextKey = "screen_id"

// ScreenTokenHeader carries a freshly issued token on every successful call
// to a screen. Clients replace their token with it, so a screen in use never
// outlives its token.
const ScreenTokenHeader = "Wesplit-Screen-Token"

// GetScreenID extracts the screen ID from the context.
// Returns empty string if not found.
func GetScreenID(ctx context.Context) string {
	screenID, _ := ctx.Value(ScreenIDKey).(string)
	return screenID
}

// WithScreenID returns a copy of ctx carrying screenID.
func WithScreenID(ctx context.Context, screenID string) context.Context {
	return context.WithValue(ctx, ScreenIDKey, screenID)
}

// RequireScreen returns an interceptor that validates the bearer screen token
// on every procedure except the public ones, and adds the screen ID to the context.
// Successful responses carry a renewed token in ScreenTokenHeader.
func RequireScreen(tokens *auth.TokenManager, public map[string]bool) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if public[req.Spec().Procedure] {
				return next(ctx, req)
			}

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			// Parse Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			resp, err := next(WithScreenID(ctx, claims.ScreenID), req)
			if err != nil {
				return resp, err
			}

			renewed, err := tokens.Generate(claims.ScreenID)
			if err != nil {
				slog.Warn("Failed to renew screen token", "screen_id", claims.ScreenID, "error", err)
				return resp, nil
			}
			resp.Header().Set(ScreenTokenHeader, renewed)
			return resp, nil
		}
	}
}
