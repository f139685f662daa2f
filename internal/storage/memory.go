package storage

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"devfolio_backend/internal/models"
)

// MemoryBlobStore is an in-process BlobStore for development and tests.
// It hands out HMAC-signed upload URLs shaped like the real thing and
// tracks which keys exist per resource kind.
type MemoryBlobStore struct {
	mu      sync.Mutex
	baseURL string
	secret  []byte
	objects map[models.ResourceKind]map[string]bool
}

func NewMemoryBlobStore(baseURL string) *MemoryBlobStore {
	if baseURL == "" {
		baseURL = "http://localhost:9000"
	}
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)
	return &MemoryBlobStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		objects: make(map[models.ResourceKind]map[string]bool),
	}
}

func (m *MemoryBlobStore) sign(key string, expires int64) string {
	mac := hmac.New(sha256.New, m.secret)
	fmt.Fprintf(mac, "%s:%d", key, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignUpload registers the key immediately, as if the client completed
// the upload. Good enough for tests exercising the delete path.
func (m *MemoryBlobStore) SignUpload(ctx context.Context, folder string, kind models.ResourceKind, expiry time.Duration) (*SignedUpload, error) {
	key := fmt.Sprintf("%s/%s", folder, uuid.NewString())
	expiresAt := time.Now().Add(expiry)

	m.mu.Lock()
	if m.objects[kind] == nil {
		m.objects[kind] = make(map[string]bool)
	}
	m.objects[kind][key] = true
	m.mu.Unlock()

	return &SignedUpload{
		UploadURL: fmt.Sprintf("%s/%s/%s?expires=%d&signature=%s",
			m.baseURL, kind, key, expiresAt.Unix(), m.sign(key, expiresAt.Unix())),
		Key:       key,
		Folder:    folder,
		ExpiresAt: expiresAt,
	}, nil
}

func (m *MemoryBlobStore) Delete(ctx context.Context, externalID string, kind models.ResourceKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects[kind], externalID)
	return nil
}

func (m *MemoryBlobStore) DeleteMany(ctx context.Context, externalIDs []string, kind models.ResourceKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range externalIDs {
		delete(m.objects[kind], id)
	}
	return nil
}

// Has reports whether a key exists in the kind's bucket.
func (m *MemoryBlobStore) Has(kind models.ResourceKind, externalID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[kind][externalID]
}

// Count returns how many objects live in the kind's bucket.
func (m *MemoryBlobStore) Count(kind models.ResourceKind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects[kind])
}
