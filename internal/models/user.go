package models

// UserRole is the free-form role column. Only RoleAdmin gates behaviour.
type UserRole string

const (
	RoleReporter  UserRole = "Reporter"
	RoleCollector UserRole = "Collector"
	RoleAdmin     UserRole = "Admin"
	RoleAuthor    UserRole = "Author"
)

// IsAdmin reports whether the role grants administrator access.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents an application user stored in the users table.
type User struct {
	ID           int64    `db:"user_id" json:"user_id"`
	FirstName    string   `db:"first_name" json:"first_name"`
	LastName     string   `db:"last_name" json:"last_name"`
	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"hashed_password" json:"-"`
	Role         UserRole `db:"user_role" json:"user_role"`
	AddressLine1 *string  `db:"address_line1" json:"address_line1"`
	City         *string  `db:"city" json:"city"`
}

// Projection returns the login view of the user.
func (u User) Projection() UserInfo {
	return UserInfo{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         u.Role,
		AddressLine1: u.AddressLine1,
		City:         u.City,
	}
}

// UserInfo describes the authenticated user in login responses.
type UserInfo struct {
	ID           int64    `json:"user_id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"user_role"`
	AddressLine1 *string  `json:"address_line1"`
	City         *string  `json:"city"`
}
