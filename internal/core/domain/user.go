package domain

import "time"

// Role is the user role string issued by the API.
type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleModerator    Role = "MODERATOR"
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	RoleCompanyUser  Role = "COMPANY_USER"
)

// User represents an authenticated dashboard user.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	UserRole Role     `json:"userRole"`
	Status   Status   `json:"status,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Address  string   `json:"address,omitempty"`
	Company  *Company `json:"company,omitempty"`
	AuditFields
}

// CompanyID returns the user's company ID, or "" for users without one.
func (u User) CompanyID() string {
	if u.Company == nil {
		return ""
	}
	return u.Company.ID
}

// Currency returns the company currency code, or "" when unknown.
func (u User) Currency() string {
	if u.Company == nil {
		return ""
	}
	return u.Company.Currency
}

// UserList is one page of users.
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// Session binds a dashboard session ID to the API token and the user it was
// issued for. Capabilities are derived once at login.
type Session struct {
	ID           string       `json:"id"`
	Token        string       `json:"token"`
	User         User         `json:"user"`
	Capabilities Capabilities `json:"capabilities"`
	CreatedAt    time.Time    `json:"createdAt"`
	LastSeenAt   time.Time    `json:"lastSeenAt"`
}
