package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Issue list pagination
	DefaultListLimit = 50
	MaxListLimit     = 500

	// Analytics
	DefaultTrendDays = 30
	MaxTrendDays     = 365

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableDepartments   = "departments"
	TableUsers         = "users"
	TableIssues        = "issues"
	TableIssueComments = "issue_comments"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgInvalidJSON         = "Invalid JSON body"
)
