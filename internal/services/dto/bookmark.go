package dto

type ToggleBookmarkRequest struct {
	JobID        uint   `json:"job_id" validate:"required"`
	Note         string `json:"note,omitempty"`
	Notification *bool  `json:"notification,omitempty"`
}

type ToggleBookmarkResponse struct {
	Bookmarked bool  `json:"bookmarked"`
	BookmarkID *uint `json:"bookmark_id,omitempty"`
}

type BookmarkStatusResponse struct {
	Bookmarked   bool   `json:"bookmarked"`
	BookmarkID   *uint  `json:"bookmark_id,omitempty"`
	Note         string `json:"note,omitempty"`
	Notification *bool  `json:"notification,omitempty"`
}

type UpdateBookmarkRequest struct {
	Note         *string `json:"note,omitempty"`
	Notification *bool   `json:"notification,omitempty"`
}

type BookmarkListQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
