package dto

import (
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
)

// ListParams defines query parameters shared by the simple listings.
type ListParams struct {
	Search string `form:"q"`
	Limit  int    `form:"limit,default=20" binding:"min=0,max=500"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// ToQuery converts the params to a list query.
func (p ListParams) ToQuery() domain.ListQuery {
	return domain.ListQuery{Search: p.Search, Limit: p.Limit, Offset: p.Offset}
}

// CompanyUpdateRequest holds the editable fields of the caller's company.
type CompanyUpdateRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Email       string `json:"email" binding:"omitempty,email"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Address     string `json:"address" binding:"omitempty,max=255"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
	Currency    string `json:"currency" binding:"omitempty,len=3,alpha"`
}

// ToUpdate converts the request to the API body.
func (r CompanyUpdateRequest) ToUpdate() domain.CompanyUpdate {
	return domain.CompanyUpdate(r)
}

// AuditLogParams defines query parameters for the audit log list.
type AuditLogParams struct {
	CompanyID string `form:"companyId"`
	Entity    string `form:"entity"`
	Action    string `form:"action"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Limit     int    `form:"limit,default=20" binding:"min=0,max=500"`
	Offset    int    `form:"offset,default=0" binding:"min=0"`
}

// ToQuery converts the params to an audit log query.
func (p AuditLogParams) ToQuery() domain.AuditLogQuery {
	return domain.AuditLogQuery{
		CompanyID: p.CompanyID,
		Entity:    p.Entity,
		Action:    p.Action,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Limit:     p.Limit,
		Offset:    p.Offset,
	}
}

// SummaryParams selects the dashboard summary period.
type SummaryParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// SummaryView is the dashboard headline with display strings.
type SummaryView struct {
	domain.CompanySummary
	TotalRevenue        string `json:"totalRevenueDisplay"`
	TotalRevenueShort   string `json:"totalRevenueCompact"`
	TotalExpense        string `json:"totalExpenseDisplay"`
	TotalExpenseShort   string `json:"totalExpenseCompact"`
	NetProfit           string `json:"netProfitDisplay"`
	NetProfitShort      string `json:"netProfitCompact"`
	NetProfitIsNegative bool   `json:"netProfitIsNegative"`
}

// ToSummaryView formats the summary amounts in currency.
func ToSummaryView(s *domain.CompanySummary, currency string) SummaryView {
	sum := s.Summary
	return SummaryView{
		CompanySummary:      *s,
		TotalRevenue:        utils.FormatCurrency(sum.TotalRevenue, currency),
		TotalRevenueShort:   utils.FormatCurrencyCompact(sum.TotalRevenue, currency),
		TotalExpense:        utils.FormatCurrency(sum.TotalExpense, currency),
		TotalExpenseShort:   utils.FormatCurrencyCompact(sum.TotalExpense, currency),
		NetProfit:           utils.FormatCurrency(sum.NetProfit, currency),
		NetProfitShort:      utils.FormatCurrencyCompact(sum.NetProfit, currency),
		NetProfitIsNegative: sum.NetProfit.IsNegative(),
	}
}
