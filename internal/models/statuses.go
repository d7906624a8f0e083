package models

type UserStatus string
type CompanyStatus string
type CompanySize string
type JobStatus string
type ApplicationStatus string
type InterviewStatus string
type InterviewResult string
type InterviewType string
type SkillLevel string
type SalaryType string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"

	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"

	CompanySizeStartup    CompanySize = "startup"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeLarge      CompanySize = "large"
	CompanySizeEnterprise CompanySize = "enterprise"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCanceled  InterviewStatus = "canceled"
	InterviewStatusNoShow    InterviewStatus = "no_show"

	InterviewResultPass    InterviewResult = "pass"
	InterviewResultFail    InterviewResult = "fail"
	InterviewResultPending InterviewResult = "pending"

	InterviewTypeOnline  InterviewType = "online"
	InterviewTypeOffline InterviewType = "offline"
	InterviewTypePhone   InterviewType = "phone"

	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"

	SalaryTypeYearly  SalaryType = "yearly"
	SalaryTypeMonthly SalaryType = "monthly"
)

// IsValidApplicationTransition reports whether an application may move
// from one status to another. Only pending applications move.
func IsValidApplicationTransition(from, to ApplicationStatus) bool {
	if from != ApplicationStatusPending {
		return false
	}
	switch to {
	case ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsValidInterviewTransition reports whether an interview may move from
// one status to another. completed, canceled and no_show are terminal.
func IsValidInterviewTransition(from, to InterviewStatus) bool {
	if from != InterviewStatusScheduled {
		return false
	}
	switch to {
	case InterviewStatusCompleted, InterviewStatusCanceled, InterviewStatusNoShow:
		return true
	}
	return false
}
