package constants

const (
	// ContextKeyUserID is the key under which the authenticated user ID is stored
	// in both the session and the gin context.
	ContextKeyUserID = "user_id"

	// ContextKeyCompanyID is set by RequireCompanyAccess.
	ContextKeyCompanyID = "company_id"

	// ContextKeyRequestID is set by the RequestID middleware.
	ContextKeyRequestID = "request_id"

	SessionCookieName = "field_service_session"

	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Company user search
const (
	DefaultUserSearchLimit = 50
	MaxUserSearchLimit     = 200
)

// MaxSuggestedInstructions caps how many instructions the AI assistant may return.
const MaxSuggestedInstructions = 30
