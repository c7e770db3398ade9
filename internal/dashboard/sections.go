package dashboard

import (
	"tourgate/internal/domain"
)

// Section identifies the active sub-view of a role dashboard. Exactly one
// section is active at a time; switching is the only navigation the
// dashboards have, there is no URL routing underneath.
type Section string

const (
	SectionDashboard         Section = "dashboard"
	SectionDestinations      Section = "destinations"
	SectionPackages          Section = "packages"
	SectionBooking           Section = "booking"
	SectionProfile           Section = "profile"
	SectionAssignedBookings  Section = "assigned-bookings"
	SectionTourPackages      Section = "tour-packages"
	SectionCreateTourPackage Section = "create-tour-package"
	SectionAllBookings       Section = "all-bookings"
	SectionManageEmployees   Section = "manage-employees"
	SectionRevenueReport     Section = "revenue-report"
)

var sectionsByRole = map[domain.Role][]Section{
	domain.RoleCustomer: {
		SectionDashboard,
		SectionDestinations,
		SectionPackages,
		SectionBooking,
		SectionProfile,
	},
	domain.RoleEmployee: {
		SectionAssignedBookings,
		SectionTourPackages,
		SectionCreateTourPackage,
		SectionProfile,
	},
	domain.RoleSuperAdmin: {
		SectionAllBookings,
		SectionManageEmployees,
		SectionRevenueReport,
		SectionProfile,
	},
}

// Sections lists the sections a role's dashboard offers, in menu order.
func Sections(role domain.Role) []Section {
	return sectionsByRole[role]
}

// DefaultSection is the section a dashboard opens on, and the fallback for an
// unknown section value.
func DefaultSection(role domain.Role) Section {
	switch role {
	case domain.RoleEmployee:
		return SectionAssignedBookings
	case domain.RoleSuperAdmin:
		return SectionAllBookings
	default:
		return SectionDashboard
	}
}

// Valid reports whether the role's dashboard has the given section.
func Valid(role domain.Role, s Section) bool {
	for _, candidate := range sectionsByRole[role] {
		if candidate == s {
			return true
		}
	}
	return false
}

// Resolve maps any section value to the one that will actually render:
// itself when the role has it, the role default otherwise. Pure, same answer
// for the same inputs.
func Resolve(role domain.Role, s Section) Section {
	if Valid(role, s) {
		return s
	}
	return DefaultSection(role)
}
