package dto

import (
	"time"

	"devfolio_backend/internal/models"
)

// AttachmentRequest is one attachment in a create or update payload.
// ResourceType is accepted from clients that just completed a signed
// upload; the service derives it from the file type when absent.
type AttachmentRequest struct {
	FileType     string `json:"fileType" validate:"required,is-file-type"`
	URL          string `json:"url" validate:"required,url"`
	ExternalID   string `json:"externalId" validate:"omitempty,max=255"`
	ResourceType string `json:"resourceType" validate:"omitempty,oneof=image raw video"`
	Label        string `json:"label" validate:"omitempty,max=100"`
}

// CreatePortfolioRequest creates one item. Order and ownership are
// assigned server-side and cannot be supplied.
type CreatePortfolioRequest struct {
	Title        string              `json:"title" validate:"required,max=100"`
	Description  string              `json:"description" validate:"max=2000"`
	Descriptions []string            `json:"descriptions" validate:"omitempty,max=20,dive,max=500"`
	Category     string              `json:"category" validate:"required,is-category"`
	Attachments  []AttachmentRequest `json:"attachments" validate:"omitempty,max=10,dive"`
	TechStack    []string            `json:"techStack" validate:"omitempty,max=30,dive,max=50"`
	StartDate    *time.Time          `json:"startDate"`
	EndDate      *time.Time          `json:"endDate"`
	IsVisible    *bool               `json:"isVisible"`
}

// UpdatePortfolioRequest uses pointer fields: absent keys keep the
// stored value. Ownership and ID are not expressible here, so a forged
// payload cannot move an item between tenants.
type UpdatePortfolioRequest struct {
	Title        *string              `json:"title" validate:"omitempty,max=100"`
	Order        *int                 `json:"order" validate:"omitempty,min=0"`
	Description  *string              `json:"description" validate:"omitempty,max=2000"`
	Descriptions *[]string            `json:"descriptions" validate:"omitempty,max=20,dive,max=500"`
	Category     *string              `json:"category" validate:"omitempty,is-category"`
	Attachments  *[]AttachmentRequest `json:"attachments" validate:"omitempty,max=10,dive"`
	TechStack    *[]string            `json:"techStack" validate:"omitempty,max=30,dive,max=50"`
	StartDate    *time.Time           `json:"startDate"`
	EndDate      *time.Time           `json:"endDate"`
	IsVisible    *bool                `json:"isVisible"`
}

// ReorderRequest rewrites the owner's item ordering to this sequence.
type ReorderRequest struct {
	ItemIDs []string `json:"itemIds" validate:"required,min=1,dive,uuid"`
}

// ToAttachments converts request attachments to model attachments,
// recording each blob-backed entry's resource kind at creation time.
func ToAttachments(reqs []AttachmentRequest) []models.Attachment {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]models.Attachment, 0, len(reqs))
	for _, a := range reqs {
		att := models.Attachment{
			FileType:     models.FileType(a.FileType),
			URL:          a.URL,
			ExternalID:   a.ExternalID,
			ResourceType: models.ResourceKind(a.ResourceType),
			Label:        a.Label,
		}
		if att.ExternalID != "" && att.ResourceType == "" {
			if kind, ok := models.KindForFileType(att.FileType); ok {
				att.ResourceType = kind
			}
		}
		out = append(out, att)
	}
	return out
}
