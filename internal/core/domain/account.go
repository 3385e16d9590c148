package domain

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// The fixed administrator credential pair. It lives outside the registered
// accounts mapping, cannot be removed, and always authenticates with role
// admin regardless of registered accounts.
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

// Account is a registered (non-admin) credential record. The username is
// not stored on the record itself; it is the lowercase key of the accounts
// mapping. Password holds whatever the active credential scheme sealed:
// the raw password under the compatibility default, a bcrypt hash otherwise.
type Account struct {
	Password string `json:"password"`
	Role     string `json:"role"`
}

var ErrDuplicateUsername = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotFound = errors.New("account not found")
