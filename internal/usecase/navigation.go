package usecase

import "github.com/xavierca1/lead-cms/internal/entity"

// Section is one console screen. Visibility is a static role table, not a
// per-render string check.
type Section string

const (
	SectionDashboard  Section = "dashboard"
	SectionLeads      Section = "leads"
	SectionProposals  Section = "proposals"
	SectionProducts   Section = "products"
	SectionSpareParts Section = "spare_parts"
	SectionReports    Section = "reports"
	SectionUsers      Section = "users"
)

var sectionOrder = []Section{
	SectionDashboard, SectionLeads, SectionProposals, SectionProducts,
	SectionSpareParts, SectionReports, SectionUsers,
}

var sectionRoles = map[Section]map[entity.Role]bool{
	SectionDashboard: {entity.RoleAdmin: true, entity.RoleSalesEngineer: true, entity.RoleManager: true},
	SectionLeads:     {entity.RoleAdmin: true, entity.RoleSalesEngineer: true, entity.RoleManager: true},
	SectionProposals: {entity.RoleAdmin: true, entity.RoleSalesEngineer: true},
	// Master data and reporting are admin territory.
	SectionProducts:   {entity.RoleAdmin: true},
	SectionSpareParts: {entity.RoleAdmin: true},
	SectionReports:    {entity.RoleAdmin: true},
	SectionUsers:      {entity.RoleAdmin: true},
}

func CanAccess(role entity.Role, section Section) bool {
	return sectionRoles[section][role]
}

// VisibleSections returns the menu for a role in display order.
func VisibleSections(role entity.Role) []Section {
	var out []Section
	for _, section := range sectionOrder {
		if CanAccess(role, section) {
			out = append(out, section)
		}
	}
	return out
}
