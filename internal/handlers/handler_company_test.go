package handlers_test

import (
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListCompanies_PlatformAdminOnly() {
	suite.company.On("ListCompanies", mock.Anything, suite.super, domain.ListQuery{Search: "acme", Limit: 20}).
		Return(&domain.CompanyList{Companies: []domain.Company{{ID: "company-1", Name: "Acme"}}, Total: 1}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/companies?q=acme", adminSID, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/companies?q=acme", superSID, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.EqualValues(1, suite.decode(w)["total"])
}

func (suite *HandlerTestSuite) TestUpdateMyCompany() {
	suite.company.On("UpdateMyCompany", mock.Anything, suite.admin, domain.CompanyUpdate{Currency: "BDT"}).
		Return(&domain.Company{ID: "company-1", Currency: "BDT"}, nil).Once()

	w := suite.request(http.MethodPatch, "/api/v1/companies/my", viewerSID, map[string]string{"currency": "BDT"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodPatch, "/api/v1/companies/my", adminSID, map[string]string{"currency": "BDT"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("BDT", suite.decode(w)["currency"])
}

func (suite *HandlerTestSuite) TestUpdateMyCompany_InvalidCurrency() {
	w := suite.request(http.MethodPatch, "/api/v1/companies/my", adminSID, map[string]string{"currency": "TAKA"})

	suite.Equal(http.StatusBadRequest, w.Code)
	fields := suite.decode(w)["fields"].(map[string]any)
	suite.Equal("must be exactly 3 characters", fields["currency"])
}

func (suite *HandlerTestSuite) TestDeleteCompany_SuperAdminOnly() {
	suite.company.On("DeleteCompany", mock.Anything, suite.super, "company-2").Return(nil).Once()

	w := suite.request(http.MethodDelete, "/api/v1/companies/company-2", adminSID, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodDelete, "/api/v1/companies/company-2", superSID, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestListUsers() {
	suite.company.On("ListUsers", mock.Anything, suite.admin, domain.ListQuery{Limit: 5, Offset: 10}).
		Return(&domain.UserList{Users: []domain.User{{ID: "u-2"}}, Total: 11}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/users?limit=5&offset=10", viewerSID, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/users?limit=5&offset=10", adminSID, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.EqualValues(11, suite.decode(w)["total"])
}

func (suite *HandlerTestSuite) TestListAuditLogs() {
	suite.company.On("ListAuditLogs", mock.Anything, suite.admin, domain.AuditLogQuery{Entity: "JournalEntry", Limit: 20}).
		Return(&domain.AuditLogList{AuditLogs: []domain.AuditLog{{ID: "log-1", Action: "CREATE"}}, Total: 1}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/audit-logs?entity=JournalEntry", viewerSID, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/audit-logs?entity=JournalEntry", adminSID, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestSummary_DefaultsToCurrentMonth() {
	summary := &domain.CompanySummary{CompanyID: "company-1"}
	summary.Summary.TotalRevenue = decimal.NewFromInt(1500)
	summary.Summary.TotalExpense = decimal.NewFromInt(1550)
	summary.Summary.NetProfit = decimal.NewFromInt(-50)

	suite.company.On("Summary", mock.Anything, suite.viewer,
		mock.MatchedBy(func(start string) bool { return len(start) == 10 && start[8:] == "01" }),
		mock.MatchedBy(func(end string) bool { return len(end) == 10 }),
	).Return(summary, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/dashboard/summary", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal("-$50.00", body["netProfitDisplay"])
	suite.Equal("$1.5K", body["totalRevenueCompact"])
	suite.Equal(true, body["netProfitIsNegative"])
}

func (suite *HandlerTestSuite) TestSummary_ExplicitPeriod() {
	suite.company.On("Summary", mock.Anything, suite.admin, "2024-01-01", "2024-12-31").
		Return(nil, apperrors.ErrNoCompany).Once()

	w := suite.request(http.MethodGet, "/api/v1/dashboard/summary?startDate=2024-01-01&endDate=2024-12-31", adminSID, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Your account is not attached to a company", suite.decode(w)["error"])
}
