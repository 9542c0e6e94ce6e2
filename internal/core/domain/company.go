package domain

import "github.com/shopspring/decimal"

// Company is a tenant. Currency is the ISO code used for every amount shown
// for the company.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Status      Status `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Currency    string `json:"currency,omitempty"`
	AdminID     string `json:"adminId,omitempty"`
	AuditFields
}

// CompanyList is one page of companies.
type CompanyList struct {
	Companies []Company `json:"companies"`
	Total     int       `json:"total"`
}

// CompanySummary is the dashboard headline for a period.
type CompanySummary struct {
	CompanyID string `json:"companyId"`
	Period    struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"period"`
	Summary struct {
		TotalRevenue       decimal.Decimal `json:"totalRevenue"`
		TotalExpense       decimal.Decimal `json:"totalExpense"`
		NetProfit          decimal.Decimal `json:"netProfit"`
		JournalEntryCount  int             `json:"journalEntryCount"`
		ActiveAccountCount int             `json:"activeAccountCount"`
	} `json:"summary"`
}

// AuditLog records a mutation performed through the API.
type AuditLog struct {
	ID        string   `json:"id"`
	Action    string   `json:"action"`
	Entity    string   `json:"entity"`
	EntityID  string   `json:"entityId"`
	Timestamp string   `json:"timestamp"`
	CompanyID string   `json:"companyId"`
	UserID    string   `json:"userId"`
	Company   *Company `json:"company,omitempty"`
	User      *User    `json:"user,omitempty"`
}

// AuditLogQuery filters the audit log list.
type AuditLogQuery struct {
	CompanyID string
	Entity    string
	Action    string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// AuditLogList is one page of audit logs.
type AuditLogList struct {
	AuditLogs []AuditLog `json:"auditLogs"`
	Total     int        `json:"total"`
}
