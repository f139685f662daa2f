package models

import (
	"gorm.io/datatypes"
)

// SocialLinks is the set of public profile links a user can expose.
type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Email     string `json:"email,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

type User struct {
	BaseModel
	Username      string                              `gorm:"uniqueIndex;not null" json:"username"`
	Email         string                              `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string                              `gorm:"not null" json:"-"`
	FullName      string                              `json:"fullName"`
	Title         string                              `json:"title"`
	Bio           string                              `json:"bio"`
	SelectedTheme string                              `gorm:"type:varchar(30);default:'minimalist'" json:"selectedTheme"`
	AvatarURL     string                              `json:"avatarUrl"`
	IsSuperAdmin  bool                                `gorm:"default:false" json:"isSuperAdmin"`
	SocialLinks   datatypes.JSONType[SocialLinks]     `json:"socialLinks"`
	Phone         string                              `json:"phone,omitempty"`
	Location      string                              `json:"location,omitempty"`
	Skills        datatypes.JSONSlice[string]         `json:"skills"`
}
