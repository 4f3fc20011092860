package errorx

// Reasons are the machine readable errorCode values sent to clients.
const (
	ReasonInternal = "INTERNAL_ERROR"

	// Request
	ReasonInvalidRequestBody    = "INVALID_REQUEST_BODY"
	ReasonMissingRequiredFields = "MISSING_REQUIRED_FIELDS"

	// Session and admin gate
	ReasonMissingAuthToken       = "MISSING_AUTH_TOKEN"
	ReasonTokenVerificationFail  = "TOKEN_VERIFICATION_FAILED"
	ReasonAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	ReasonAdminAccessRequired    = "ADMIN_ACCESS_REQUIRED"
	ReasonAdminCheckError        = "ADMIN_CHECK_ERROR"
	ReasonPermissionDenied       = "PERMISSION_DENIED"
	ReasonOwnershipRequired      = "OWNERSHIP_REQUIRED"

	// Store
	ReasonDBUnavailable = "DB_UNAVAILABLE"
	ReasonConflict      = "CONFLICT"
	ReasonNotFound      = "NOT_FOUND"

	// Users
	ReasonInvalidCredentials      = "INVALID_CREDENTIALS"
	ReasonAccountDisabled         = "ACCOUNT_DISABLED"
	ReasonInvalidUsername         = "INVALID_USERNAME"
	ReasonPasswordPolicyViolation = "PASSWORD_POLICY_VIOLATION"
	ReasonUsernameAlreadyExists   = "USERNAME_ALREADY_EXISTS"
	ReasonUserNotFound            = "USER_NOT_FOUND"

	// Profiles
	ReasonUserProfileNotFound      = "USER_PROFILE_NOT_FOUND"
	ReasonUserProfileAlreadyExists = "USER_PROFILE_ALREADY_EXISTS"
	ReasonNicknameAlreadyExists    = "NICKNAME_ALREADY_EXISTS"
	ReasonInvalidProfile           = "INVALID_PROFILE"

	// Configs and themes
	ReasonUserConfigNotFound      = "USER_CONFIG_NOT_FOUND"
	ReasonUserConfigAlreadyExists = "USER_CONFIG_ALREADY_EXISTS"
	ReasonThemeNotFound           = "THEME_NOT_FOUND"
	ReasonThemeNameAlreadyExists  = "THEME_NAME_ALREADY_EXISTS"
	ReasonInvalidThemeMode        = "INVALID_THEME_MODE"
	ReasonInvalidThemeColors      = "INVALID_THEME_COLORS"
	ReasonCannotDeleteDefault     = "CANNOT_DELETE_DEFAULT_THEME"
	ReasonThemeInUse              = "THEME_IN_USE"

	// Admin grants
	ReasonAdminAlreadyExists = "ADMIN_ALREADY_EXISTS"
	ReasonAdminNotFound      = "ADMIN_NOT_FOUND"
	ReasonInvalidAdminRole   = "INVALID_ADMIN_ROLE"
	ReasonInvalidPermission  = "INVALID_PERMISSION"

	// Games
	ReasonGameNotFound    = "GAME_NOT_FOUND"
	ReasonInvalidGameData = "INVALID_GAME_DATA"
	ReasonParsedDataEmpty = "PARSED_DATA_EMPTY"
)
