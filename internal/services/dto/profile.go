package dto

import (
	"time"

	"devfolio_backend/internal/models"
)

// ProfileResponse is the account view returned to its owner and, minus
// nothing further, embedded in public pages. The password hash never
// leaves the model (json:"-") and the admin flag is omitted here
// explicitly.
type ProfileResponse struct {
	ID            string             `json:"id"`
	Username      string             `json:"username"`
	Email         string             `json:"email,omitempty"`
	FullName      string             `json:"fullName"`
	Title         string             `json:"title"`
	Bio           string             `json:"bio"`
	SelectedTheme string             `json:"selectedTheme"`
	AvatarURL     string             `json:"avatarUrl"`
	SocialLinks   models.SocialLinks `json:"socialLinks"`
	Phone         string             `json:"phone,omitempty"`
	Location      string             `json:"location,omitempty"`
	Skills        []string           `json:"skills"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// NewProfileResponse maps a user model to its owner-facing view.
func NewProfileResponse(u *models.User) *ProfileResponse {
	return &ProfileResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		Title:         u.Title,
		Bio:           u.Bio,
		SelectedTheme: u.SelectedTheme,
		AvatarURL:     u.AvatarURL,
		SocialLinks:   u.SocialLinks.Data(),
		Phone:         u.Phone,
		Location:      u.Location,
		Skills:        u.Skills,
		CreatedAt:     u.CreatedAt,
	}
}

// NewPublicProfileResponse is the anonymous-visitor view: same shape
// with the email withheld.
func NewPublicProfileResponse(u *models.User) *ProfileResponse {
	resp := NewProfileResponse(u)
	resp.Email = ""
	return resp
}

// UpdateProfileRequest uses pointer fields so absent keys leave the
// stored value alone. There is deliberately no way to express username,
// email, password or the admin flag here.
type UpdateProfileRequest struct {
	FullName      *string             `json:"fullName" validate:"omitempty,max=100"`
	Title         *string             `json:"title" validate:"omitempty,max=100"`
	Bio           *string             `json:"bio" validate:"omitempty,max=1000"`
	SelectedTheme *string             `json:"selectedTheme" validate:"omitempty,max=30"`
	AvatarURL     *string             `json:"avatarUrl" validate:"omitempty,url"`
	SocialLinks   *models.SocialLinks `json:"socialLinks"`
	Phone         *string             `json:"phone" validate:"omitempty,max=30"`
	Location      *string             `json:"location" validate:"omitempty,max=100"`
	Skills        *[]string           `json:"skills" validate:"omitempty,max=50,dive,max=50"`
}
