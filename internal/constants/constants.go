package constants

// Session
const (
	SessionCookieName = "hourtrack_session"
	ContextKeyUserID  = "user_id"
	ContextKeyEntry   = "entry"
)

// Validation
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Reporting
const (
	// ReportMonths is the size of the rolling month window used by
	// the monthly grouping. The window always ends at the reference month.
	ReportMonths = 12
)
