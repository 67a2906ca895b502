package contextkeys

// Custom key type to avoid collisions with other packages writing to the context.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (pool or per-request
// transaction) is stored in the request context.
const DBContextKey = contextKey("db")

// PrincipalContextKey is the key under which the authenticated principal is
// stored after the auth middleware has run.
const PrincipalContextKey = contextKey("principal")
