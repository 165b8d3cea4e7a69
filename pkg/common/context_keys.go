package common

type contextKey string

// Keys under which the auth middleware stores request identity in fiber
// locals.
const (
	UserIDContextKey    contextKey = "user_id"
	UserEmailContextKey contextKey = "user_email"
)
