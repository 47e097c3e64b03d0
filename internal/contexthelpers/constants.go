package contexthelpers

type contextKey string

const IsAuthenticatedContextKey = contextKey("isAuthenticated")
const CurrentPathContextKey = contextKey("currentPath")
const CspNonceContextKey = contextKey("cspNonce")
