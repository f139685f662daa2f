package storage

import (
	"context"
	"fmt"
	"time"

	"devfolio_backend/internal/models"
)

// SignedUpload is a short-lived credential letting a client push one file
// straight to the blob store. The URL embeds an expiring timestamp and
// signature; the server never proxies file bytes.
type SignedUpload struct {
	UploadURL string    `json:"uploadUrl"`
	Key       string    `json:"key"`
	Folder    string    `json:"folder"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// BlobStore is the external object-storage collaborator. Objects are
// bucketed by resource kind (image / raw / video), and referenced by the
// key handed out at signing time.
type BlobStore interface {
	// SignUpload mints an upload credential scoped to folder. The returned
	// key is the externalId the attachment must record.
	SignUpload(ctx context.Context, folder string, kind models.ResourceKind, expiry time.Duration) (*SignedUpload, error)

	// Delete removes a single object from the kind's bucket.
	Delete(ctx context.Context, externalID string, kind models.ResourceKind) error

	// DeleteMany removes a batch of objects from the kind's bucket.
	DeleteMany(ctx context.Context, externalIDs []string, kind models.ResourceKind) error
}

// Config holds blob store configuration.
type Config struct {
	Type        string // s3, memory
	Endpoint    string // for R2 or custom S3
	Region      string
	AccessKey   string
	SecretKey   string
	ImageBucket string
	RawBucket   string
	VideoBucket string
	BaseURL     string // public URL base (memory store)
}

// NewBlobStore creates a blob store instance based on configuration.
func NewBlobStore(cfg Config) (BlobStore, error) {
	switch cfg.Type {
	case "s3":
		return NewS3BlobStore(cfg)
	case "memory":
		return NewMemoryBlobStore(cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported blob store type: %s", cfg.Type)
	}
}
