package domain

// Capabilities is the set of actions a role may perform. Handlers check these
// flags instead of comparing role strings.
type Capabilities struct {
	CanManageCompanies      bool `json:"canManageCompanies"`
	CanDeleteCompany        bool `json:"canDeleteCompany"`
	CanManageAllUsers       bool `json:"canManageAllUsers"`
	CanManageCompanyUsers   bool `json:"canManageCompanyUsers"`
	CanViewBooks            bool `json:"canViewBooks"`
	CanManageCategories     bool `json:"canManageCategories"`
	CanDeleteJournalEntry   bool `json:"canDeleteJournalEntry"`
	CanEditOwnCompany       bool `json:"canEditOwnCompany"`
	CanViewAuditLogs        bool `json:"canViewAuditLogs"`
	CanFilterAuditByCompany bool `json:"canFilterAuditByCompany"`
}

// CapabilitiesFor derives the capability set for a role. Unknown roles get none.
func CapabilitiesFor(role Role) Capabilities {
	switch role {
	case RoleSuperAdmin:
		return Capabilities{
			CanManageCompanies:      true,
			CanDeleteCompany:        true,
			CanManageAllUsers:       true,
			CanViewAuditLogs:        true,
			CanFilterAuditByCompany: true,
		}
	case RoleModerator:
		return Capabilities{
			CanManageCompanies: true,
			CanManageAllUsers:  true,
		}
	case RoleCompanyAdmin:
		return Capabilities{
			CanManageCompanyUsers: true,
			CanViewBooks:          true,
			CanManageCategories:   true,
			CanDeleteJournalEntry: true,
			CanEditOwnCompany:     true,
			CanViewAuditLogs:      true,
		}
	case RoleCompanyUser:
		return Capabilities{
			CanViewBooks: true,
		}
	}
	return Capabilities{}
}
