package models

import "time"

type User struct {
	BaseModel
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Name        string     `gorm:"not null" json:"name"`
	Phone       string     `json:"phone,omitempty"`
	Resume      string     `gorm:"type:text" json:"resume,omitempty"`
	Status      UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// Relations
	Applications []Application `gorm:"foreignKey:UserID" json:"-"`
	Bookmarks    []Bookmark    `gorm:"foreignKey:UserID" json:"-"`
	Interviews   []Interview   `gorm:"foreignKey:UserID" json:"-"`
	UserSkills   []UserSkill   `gorm:"foreignKey:UserID" json:"-"`
}
