package dto

import "github.com/SscSPs/ledger_dashboard/internal/core/domain"

// LoginRequest defines the credentials posted to the login form.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

// SessionResponse describes the signed-in user. The API token never leaves the server.
type SessionResponse struct {
	User         domain.User         `json:"user"`
	Capabilities domain.Capabilities `json:"capabilities"`
}

// LoginResponse is returned by a successful login. SessionID is also set as a cookie.
type LoginResponse struct {
	SessionID string `json:"sessionId"`
	SessionResponse
}

// ToSessionResponse converts a session to its public view.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{User: s.User, Capabilities: s.Capabilities}
}

// ToLoginResponse converts a freshly created session to the login response.
func ToLoginResponse(s *domain.Session) LoginResponse {
	return LoginResponse{SessionID: s.ID, SessionResponse: ToSessionResponse(s)}
}

// ChangePasswordRequest is the change password form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Validate applies the form rules checked before anything is sent.
func (r ChangePasswordRequest) Validate() error {
	return domain.CheckNewPassword(r.NewPassword, r.ConfirmPassword)
}

// ToPasswordChange converts the form to the API body.
func (r ChangePasswordRequest) ToPasswordChange() domain.PasswordChange {
	return domain.PasswordChange{CurrentPassword: r.CurrentPassword, NewPassword: r.NewPassword}
}

// ProfileUpdateRequest holds the editable profile fields. Omitted fields are left unchanged.
type ProfileUpdateRequest struct {
	Name    string `json:"name" binding:"omitempty,max=100"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
	Address string `json:"address" binding:"omitempty,max=255"`
}

// ToProfileUpdate converts the request to the API body.
func (r ProfileUpdateRequest) ToProfileUpdate() domain.ProfileUpdate {
	return domain.ProfileUpdate(r)
}
