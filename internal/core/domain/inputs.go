package domain

import "github.com/SscSPs/ledger_dashboard/internal/apperrors"

// MinPasswordLength is the shortest new password accepted.
const MinPasswordLength = 8

// AccountInput is the body for creating or updating an account.
type AccountInput struct {
	Name        string      `json:"name,omitempty"`
	AccountType AccountType `json:"accountType,omitempty"`
	CategoryID  *string     `json:"categoryId,omitempty"`
	CompanyID   string      `json:"companyId,omitempty"`
}

// CategoryInput is the body for creating or renaming a category.
type CategoryInput struct {
	Name      string `json:"name"`
	CompanyID string `json:"companyId,omitempty"`
}

// MoveAccountsInput reassigns accounts to a category. An empty CategoryID
// moves them to uncategorized.
type MoveAccountsInput struct {
	AccountIDs []string `json:"accountIds"`
	CategoryID *string  `json:"categoryId"`
	CompanyID  string   `json:"companyId,omitempty"`
}

// ProfileUpdate is the body of PATCH /auth/me.
type ProfileUpdate struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// PasswordChange is the body of POST /auth/change-password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CheckNewPassword applies the form rules before a change is sent: the
// confirmation must match and the password must be long enough.
func CheckNewPassword(newPassword, confirmation string) error {
	if newPassword != confirmation {
		return apperrors.NewValidationError(apperrors.ErrValidation, "New passwords do not match")
	}
	if len([]rune(newPassword)) < MinPasswordLength {
		return apperrors.NewValidationError(apperrors.ErrValidation, "New password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// CompanyUpdate is the body of PATCH /companies/my.
type CompanyUpdate struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// ListQuery is the paging and search shared by simple listings.
type ListQuery struct {
	Search string
	Limit  int
	Offset int
}
