package models

type UserRole string
type ApplicationStatus string
type EmploymentType string
type ExperienceLevel string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleEmployer  UserRole = "employer"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	EmploymentFullTime   EmploymentType = "Full-Time"
	EmploymentPartTime   EmploymentType = "Part-Time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"

	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
)

// Valid reports whether the role is one of the closed set. The role set is
// fixed at registration; there is no admin tier.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleJobSeeker, UserRoleEmployer:
		return true
	default:
		return false
	}
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is defined from s.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	default:
		return false
	}
}

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	default:
		return false
	}
}
