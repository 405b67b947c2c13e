package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldUserID    = "user_id"
	FieldProjectID = "project_id"
	FieldEntryID   = "entry_id"
	FieldUsername  = "username"
	FieldGrouping  = "grouping"
	FieldSkipped   = "skipped_entries"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentSeed    = "seed"
	ComponentReports = "reports"
)
