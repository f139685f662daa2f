package models

import (
	"time"

	"gorm.io/datatypes"
)

// Category is the fixed set of portfolio item kinds. There is no dynamic
// extension: renderers and validation both rely on exactly these five.
type Category string

const (
	CategoryProject     Category = "PROJECT"
	CategoryCertificate Category = "CERTIFICATE"
	CategoryResume      Category = "RESUME"
	CategoryExperience  Category = "EXPERIENCE"
	CategoryEducation   Category = "EDUCATION"
)

// Categories lists all item categories in display order.
var Categories = []Category{
	CategoryProject,
	CategoryCertificate,
	CategoryResume,
	CategoryExperience,
	CategoryEducation,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryProject, CategoryCertificate, CategoryResume, CategoryExperience, CategoryEducation:
		return true
	}
	return false
}

// FileType describes what an attachment points at.
type FileType string

const (
	FileTypeImage FileType = "IMAGE"
	FileTypePDF   FileType = "PDF"
	FileTypeLink  FileType = "LINK"
	FileTypeVideo FileType = "VIDEO"
)

func (f FileType) Valid() bool {
	switch f {
	case FileTypeImage, FileTypePDF, FileTypeLink, FileTypeVideo:
		return true
	}
	return false
}

// ResourceKind is the blob-store bucket an uploaded file lives in.
type ResourceKind string

const (
	ResourceImage ResourceKind = "image"
	ResourceRaw   ResourceKind = "raw"
	ResourceVideo ResourceKind = "video"
)

// KindForFileType maps an attachment file type to its blob-store bucket.
// LINK attachments carry no blob, so the second return reports whether a
// blob-store obligation can exist at all.
func KindForFileType(f FileType) (ResourceKind, bool) {
	switch f {
	case FileTypeImage:
		return ResourceImage, true
	case FileTypePDF:
		return ResourceRaw, true
	case FileTypeVideo:
		return ResourceVideo, true
	default:
		return "", false
	}
}

// Attachment is a file or link associated with a portfolio item. ExternalID
// is set only for entries backed by the blob store; its presence is the
// signal that a delete obligation exists when the attachment goes away.
// ResourceType is recorded at creation time so cleanup is a single targeted
// call instead of a guess across buckets.
type Attachment struct {
	FileType     FileType     `json:"fileType"`
	URL          string       `json:"url"`
	ExternalID   string       `json:"externalId,omitempty"`
	ResourceType ResourceKind `json:"resourceType,omitempty"`
	Label        string       `json:"label,omitempty"`
}

// MaxAttachments caps attachments per item.
const MaxAttachments = 10

type PortfolioItem struct {
	BaseModel
	UserID       string                          `gorm:"type:uuid;not null;index:idx_items_user_order" json:"userId"`
	Title        string                          `gorm:"not null" json:"title"`
	Description  string                          `json:"description"`
	Descriptions datatypes.JSONSlice[string]     `json:"descriptions,omitempty"`
	Category     Category                        `gorm:"type:varchar(20);not null;index" json:"category"`
	Attachments  datatypes.JSONSlice[Attachment] `json:"attachments"`
	TechStack    datatypes.JSONSlice[string]     `json:"techStack"`
	StartDate    *time.Time                      `json:"startDate,omitempty"`
	EndDate      *time.Time                      `json:"endDate,omitempty"`
	OrderIndex   int                             `gorm:"default:0;index:idx_items_user_order" json:"order"`
	IsVisible    bool                            `gorm:"default:true" json:"isVisible"`
}

// BlobAttachments returns the attachments that carry a blob-store reference.
func (p *PortfolioItem) BlobAttachments() []Attachment {
	var out []Attachment
	for _, a := range p.Attachments {
		if a.ExternalID != "" {
			out = append(out, a)
		}
	}
	return out
}
