package constant

const (
	ROLE_ADMIN    = "admin"
	ROLE_EMPLOYEE = "employee"

	STATUS_PENDING     = "Pending"
	STATUS_IN_PROGRESS = "In Progress"
	STATUS_COMPLETED   = "Completed"

	EMP_CODE_PREFIX = "DS"
	EMP_CODE_DIGITS = 3

	// retries for code generation when two creations race to the same code
	EMP_CODE_MAX_RETRY = 3

	REDIS_REQUEST_LOGIN_IP_KEYS          = "login:ip:%s"
	REDIS_REQUEST_MAX_ATTEMPTS_LOGIN     = 20
	REDIS_REQUEST_IP_EXPIRE              = 15
	REDIS_KEY_USER_LOGIN                 = "login_token_user_"
	REDIS_KEY_AUTO_LOGOUT                = "user_auto_logout"
)

var TaskStatuses = []string{STATUS_PENDING, STATUS_IN_PROGRESS, STATUS_COMPLETED}

func IsValidTaskStatus(status string) bool {
	for _, s := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}
