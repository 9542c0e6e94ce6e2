package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Status is the lifecycle flag shared by accounts, companies and users.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// CategoryRef is the category summary embedded in an account.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Account is a chart-of-accounts entry owned by a company.
type Account struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	AccountType AccountType  `json:"accountType"`
	Status      Status       `json:"status"`
	CompanyID   string       `json:"companyId"`
	CategoryID  string       `json:"categoryId,omitempty"`
	Category    *CategoryRef `json:"category,omitempty"`
	AuditFields
}

// AccountRef is the account summary embedded in journal and ledger lines.
type AccountRef struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType,omitempty"`
}

// Category groups accounts for display.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CompanyID    string `json:"companyId"`
	AccountCount int    `json:"accountCount"`
	AuditFields
}

// AccountQuery filters the account list.
type AccountQuery struct {
	Search      string
	AccountType AccountType
	Status      Status
	CategoryID  string
	Limit       int
	Offset      int
}

// AccountList is one page of accounts.
type AccountList struct {
	Accounts []Account `json:"accounts"`
	Total    int       `json:"total"`
}

// CategoryList is the category listing plus the count of accounts without one.
type CategoryList struct {
	Categories         []Category `json:"categories"`
	Total              int        `json:"total"`
	UncategorizedCount int        `json:"uncategorizedCount"`
}
