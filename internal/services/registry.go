package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	BookmarkService    BookmarkService
	InterviewService   InterviewService
	CompanyService     CompanyService
	SkillService       SkillService
}
