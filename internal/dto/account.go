package dto

import "github.com/SscSPs/ledger_dashboard/internal/core/domain"

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Search      string `form:"q"`
	AccountType string `form:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Status      string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	CategoryID  string `form:"categoryId"`
	Limit       int    `form:"limit,default=100" binding:"min=0,max=1000"`
	Offset      int    `form:"offset,default=0" binding:"min=0"`
}

// ToQuery converts the params to an account query.
func (p ListAccountsParams) ToQuery() domain.AccountQuery {
	return domain.AccountQuery{
		Search:      p.Search,
		AccountType: domain.AccountType(p.AccountType),
		Status:      domain.Status(p.Status),
		CategoryID:  p.CategoryID,
		Limit:       p.Limit,
		Offset:      p.Offset,
	}
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required,max=100"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	CategoryID  *string            `json:"categoryId"`
}

// ToInput converts the request to the API body.
func (r CreateAccountRequest) ToInput() domain.AccountInput {
	return domain.AccountInput{Name: r.Name, AccountType: r.AccountType, CategoryID: r.CategoryID}
}

// UpdateAccountRequest defines the data allowed for updating an account.
type UpdateAccountRequest struct {
	Name       string  `json:"name" binding:"omitempty,max=100"`
	CategoryID *string `json:"categoryId"`
}

// ToInput converts the request to the API body.
func (r UpdateAccountRequest) ToInput() domain.AccountInput {
	return domain.AccountInput{Name: r.Name, CategoryID: r.CategoryID}
}

// CategoryRequest creates or renames a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// MoveAccountsRequest reassigns accounts. A null categoryId moves them to uncategorized.
type MoveAccountsRequest struct {
	AccountIDs []string `json:"accountIds" binding:"required,min=1,dive,required"`
	CategoryID *string  `json:"categoryId"`
}

// ToInput converts the request to the API body.
func (r MoveAccountsRequest) ToInput() domain.MoveAccountsInput {
	return domain.MoveAccountsInput{AccountIDs: r.AccountIDs, CategoryID: r.CategoryID}
}
