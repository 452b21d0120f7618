package middleware

// identity.go holds the context key the auth middleware writes and the
// accessor handlers use to read it.

import "github.com/labstack/echo/v4"

const userIDKey = "user_id"

// UserID returns the authenticated user's id, if any.
func UserID(c echo.Context) (string, bool) {
	s, ok := c.Get(userIDKey).(string)
	return s, ok && s != ""
}

// userOrAnon is UserID with "anon" for unauthenticated requests.
func userOrAnon(c echo.Context) string {
	if s, ok := UserID(c); ok {
		return s
	}
	return "anon"
}
