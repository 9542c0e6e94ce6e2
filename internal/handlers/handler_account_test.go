package handlers_test

import (
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListAccounts_BindsFilters() {
	expected := domain.AccountQuery{AccountType: domain.Asset, Status: domain.StatusActive, Limit: 100}
	suite.account.On("ListAccounts", mock.Anything, suite.viewer, expected).
		Return(&domain.AccountList{Accounts: []domain.Account{{ID: "acc-1", Name: "Cash"}}, Total: 1}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/accounts?accountType=ASSET&status=ACTIVE", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.EqualValues(1, body["total"])
}

func (suite *HandlerTestSuite) TestListAccounts_InvalidType() {
	w := suite.request(http.MethodGet, "/api/v1/accounts?accountType=CASH", viewerSID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	fields := suite.decode(w)["fields"].(map[string]any)
	suite.Equal("must be one of: ASSET, LIABILITY, EQUITY, INCOME, EXPENSE", fields["accountType"])
}

func (suite *HandlerTestSuite) TestBooks_ForbiddenWithoutCompanyRole() {
	w := suite.request(http.MethodGet, "/api/v1/accounts", superSID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You do not have permission to perform this action", suite.decode(w)["error"])
	suite.account.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount_RequiresManageCategories() {
	w := suite.request(http.MethodPost, "/api/v1/accounts", viewerSID, map[string]string{
		"name":        "Petty Cash",
		"accountType": "ASSET",
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.account.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount() {
	categoryID := "cat-1"
	suite.account.On("CreateAccount", mock.Anything, suite.admin, domain.AccountInput{
		Name:        "Petty Cash",
		AccountType: domain.Asset,
		CategoryID:  &categoryID,
	}).Return(&domain.Account{ID: "acc-9", Name: "Petty Cash", AccountType: domain.Asset}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/accounts", adminSID, map[string]any{
		"name":        "Petty Cash",
		"accountType": "ASSET",
		"categoryId":  categoryID,
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Equal("acc-9", suite.decode(w)["id"])
}

func (suite *HandlerTestSuite) TestCreateAccount_MissingName() {
	w := suite.request(http.MethodPost, "/api/v1/accounts", adminSID, map[string]string{"accountType": "ASSET"})

	suite.Equal(http.StatusBadRequest, w.Code)
	fields := suite.decode(w)["fields"].(map[string]any)
	suite.Equal("is required", fields["name"])
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.account.On("GetAccount", mock.Anything, suite.viewer, "missing").
		Return(nil, apperrors.NewAPIError(http.StatusNotFound, "Account not found", "")).Once()

	w := suite.request(http.MethodGet, "/api/v1/accounts/missing", viewerSID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Account not found", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestMoveAccounts_ToUncategorized() {
	suite.category.On("MoveAccounts", mock.Anything, suite.admin, domain.MoveAccountsInput{
		AccountIDs: []string{"acc-1", "acc-2"},
	}).Return(nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/accounts/move", adminSID, map[string]any{
		"accountIds": []string{"acc-1", "acc-2"},
		"categoryId": nil,
	})

	suite.Equal(http.StatusNoContent, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestMoveAccounts_EmptySelection() {
	w := suite.request(http.MethodPost, "/api/v1/accounts/move", adminSID, map[string]any{"accountIds": []string{}})

	suite.Equal(http.StatusBadRequest, w.Code)
	fields := suite.decode(w)["fields"].(map[string]any)
	suite.Equal("must be at least 1", fields["accountIds"])
}

func (suite *HandlerTestSuite) TestCategories() {
	suite.category.On("ListCategories", mock.Anything, suite.viewer).
		Return(&domain.CategoryList{Categories: []domain.Category{{ID: "cat-1", Name: "Bank"}}, Total: 1, UncategorizedCount: 4}, nil).Once()
	suite.category.On("DeleteCategory", mock.Anything, suite.admin, "cat-1").Return(nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/categories", viewerSID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.EqualValues(4, suite.decode(w)["uncategorizedCount"])

	w = suite.request(http.MethodDelete, "/api/v1/categories/cat-1", viewerSID, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodDelete, "/api/v1/categories/cat-1", adminSID, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}
