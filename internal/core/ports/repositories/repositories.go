package repositories

// RepositoryProvider holds all gateway interfaces needed by services.
// Every implementation talks to the accounting API; token is the caller's
// API bearer token.
type RepositoryProvider struct {
	AuthRepo      AuthRepository
	AccountRepo   AccountRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	CompanyRepo   CompanyRepositoryFacade
	UserRepo      UserRepository
	JournalRepo   JournalRepositoryFacade
	ReportingRepo ReportingRepository
	AuditRepo     AuditLogRepository
	SessionRepo   SessionRepository
}
