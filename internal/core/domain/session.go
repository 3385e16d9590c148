package domain

import "errors"

// Session is the current logged-in username/role pair. A nil *Session
// means no one is logged in. Sessions are set by a successful login,
// cleared by logout, and carry no expiry of their own.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")
