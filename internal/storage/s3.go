package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"devfolio_backend/internal/models"
)

// S3BlobStore implements BlobStore against any S3-compatible service
// (AWS S3, Cloudflare R2, MinIO). Each resource kind maps to its own
// bucket, mirroring how the store groups deletions.
type S3BlobStore struct {
	client  *s3.S3
	buckets map[models.ResourceKind]string
}

func NewS3BlobStore(cfg Config) (*S3BlobStore, error) {
	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Region == "" {
		awsConfig.Region = aws.String("auto")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &S3BlobStore{
		client: s3.New(sess),
		buckets: map[models.ResourceKind]string{
			models.ResourceImage: cfg.ImageBucket,
			models.ResourceRaw:   cfg.RawBucket,
			models.ResourceVideo: cfg.VideoBucket,
		},
	}, nil
}

func (s *S3BlobStore) bucketFor(kind models.ResourceKind) (string, error) {
	bucket, ok := s.buckets[kind]
	if !ok || bucket == "" {
		return "", fmt.Errorf("no bucket configured for resource kind %q", kind)
	}
	return bucket, nil
}

// SignUpload presigns a PUT into the kind's bucket under folder. The
// presigned URL carries the expiry and signature, so possession of it is
// the whole credential.
func (s *S3BlobStore) SignUpload(ctx context.Context, folder string, kind models.ResourceKind, expiry time.Duration) (*SignedUpload, error) {
	bucket, err := s.bucketFor(kind)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s", folder, uuid.NewString())

	req, _ := s.client.PutObjectRequest(&s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &SignedUpload{
		UploadURL: url,
		Key:       key,
		Folder:    folder,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// Delete removes a single object.
func (s *S3BlobStore) Delete(ctx context.Context, externalID string, kind models.ResourceKind) error {
	bucket, err := s.bucketFor(kind)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(externalID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, externalID, err)
	}
	return nil
}

// DeleteMany removes a batch of objects with the bulk API, chunked to the
// S3 limit of 1000 keys per request.
func (s *S3BlobStore) DeleteMany(ctx context.Context, externalIDs []string, kind models.ResourceKind) error {
	if len(externalIDs) == 0 {
		return nil
	}
	bucket, err := s.bucketFor(kind)
	if err != nil {
		return err
	}

	const batchSize = 1000
	for start := 0; start < len(externalIDs); start += batchSize {
		end := start + batchSize
		if end > len(externalIDs) {
			end = len(externalIDs)
		}

		objects := make([]*s3.ObjectIdentifier, 0, end-start)
		for _, id := range externalIDs[start:end] {
			objects = append(objects, &s3.ObjectIdentifier{Key: aws.String(id)})
		}

		_, err := s.client.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &s3.Delete{
				Objects: objects,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return fmt.Errorf("failed to bulk delete from %s: %w", bucket, err)
		}
	}
	return nil
}
