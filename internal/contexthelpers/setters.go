package contexthelpers

import (
	"context"
	"net/http"
)

func AuthenticateContext(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), IsAuthenticatedContextKey, true)
	return r.WithContext(ctx)
}

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	ctx := context.WithValue(r.Context(), CspNonceContextKey, cspNonce)
	return r.WithContext(ctx)
}
