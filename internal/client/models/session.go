// Package models defines the poetry backend resources as seen by the client.
package models

// Role values issued by the backend.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Session is the client-held record of the authenticated identity plus the
// opaque bearer credential returned by the login endpoint. It is replaced
// wholesale on login and cleared wholesale on logout; there is no partial
// update.
type Session struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
