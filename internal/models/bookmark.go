package models

type Bookmark struct {
	BaseModel
	UserID       uint   `gorm:"not null;uniqueIndex:idx_bookmarks_user_job" json:"user_id"`
	JobID        uint   `gorm:"not null;uniqueIndex:idx_bookmarks_user_job" json:"job_id"`
	Note         string `gorm:"type:text" json:"note,omitempty"`
	Notification bool   `gorm:"default:false" json:"notification"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
