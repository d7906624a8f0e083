package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	BookmarkHandler    *BookmarkHandler
	InterviewHandler   *InterviewHandler
	CompanyHandler     *CompanyHandler
	SkillHandler       *SkillHandler
}
