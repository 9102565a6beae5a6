package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"

	// Context keys
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"

	// Back office roles
	RoleAdmin   = "admin"
	RoleManager = "gestor"

	// Database table names
	TableBuildings      = "buildings"
	TableSuppliers      = "suppliers"
	TableAssistances    = "assistances"
	TableCommunications = "assistance_communications"
	TableAttachments    = "assistance_attachments"
	TableAuditEvents    = "audit_events"
)
