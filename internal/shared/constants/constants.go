package constants

const (
	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"
	ContextKeyOperator  = "operator"

	// DefaultOperator is the actor recorded when no operator token is presented.
	DefaultOperator = "system"

	// Database table names
	TableSequenceLocks      = "sequence_locks"
	TableSubscriberAccounts = "subscriber_accounts"
	TableNetworkIdentities  = "network_identities"
	TableCredentialPatterns = "credential_patterns"
	TableConnectivityEvents = "connectivity_events"
	TableApplications       = "applications"
	TableCustomers          = "customers"
	TablePlans              = "plans"
	TableLocations          = "locations"
	TableJobOrders          = "job_orders"
	TableSessionStatuses    = "session_statuses"
	TableLoginAccounts      = "login_accounts"
	TableSystemSettings     = "system_settings"

	// Setting categories stored in system_settings
	SettingCategoryAAA             = "aaa"
	SettingCategoryAccountSequence = "account_sequence"

	// SequenceLockAccountNo names the sequence_locks row guarding account number allocation.
	SequenceLockAccountNo = "account_no"

	// ConnectivityChannel is the Redis channel carrying connectivity events.
	ConnectivityChannel = "subcore:connectivity"

	// TransitionLockKeyPrefix prefixes per-account transition lock keys in Redis.
	TransitionLockKeyPrefix = "subcore:transition:"
)
