package contexthelpers

import (
	"context"
)

func IsAuthenticated(ctx context.Context) bool {
	isAuthenticated, ok := ctx.Value(IsAuthenticatedContextKey).(bool)
	if !ok {
		return false
	}

	return isAuthenticated
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(CspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}
