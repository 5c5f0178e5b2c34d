package domain

// Role is the capability level of a staff account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether r is one of the two supported roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User models a staff account as persisted by the credential store.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Claims is the identity snapshot bound to a session at login time.
// It never carries the password hash.
type Claims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// ClaimsFor takes the session snapshot of u.
func ClaimsFor(u *User) Claims {
	return Claims{UserID: u.ID, Name: u.Name, Role: u.Role}
}

// IsAdmin reports whether the snapshot carries the administrator role.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
