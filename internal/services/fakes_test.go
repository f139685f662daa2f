package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"devfolio_backend/internal/models"
	"devfolio_backend/internal/repositories"
	"devfolio_backend/internal/storage"
)

// The fakes ignore the db parameter entirely, which is exactly why the
// repositories take it per call: services stay unit-testable without a
// database.

type fakePortfolioRepo struct {
	items map[string]*models.PortfolioItem
	seq   int
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{items: make(map[string]*models.PortfolioItem)}
}

func (f *fakePortfolioRepo) Create(db *gorm.DB, item *models.PortfolioItem) error {
	next := 0
	for _, existing := range f.items {
		if existing.UserID == item.UserID && existing.OrderIndex >= next {
			next = existing.OrderIndex + 1
		}
	}
	item.OrderIndex = next
	f.seq++
	item.ID = fmt.Sprintf("item-%d", f.seq)
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakePortfolioRepo) FindByID(db *gorm.DB, ownerID, id string) (*models.PortfolioItem, error) {
	item, ok := f.items[id]
	if !ok || item.UserID != ownerID {
		return nil, repositories.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (f *fakePortfolioRepo) FindByOwner(db *gorm.DB, ownerID string) ([]models.PortfolioItem, error) {
	var out []models.PortfolioItem
	for _, item := range f.items {
		if item.UserID == ownerID {
			out = append(out, *item)
		}
	}
	sortItems(out)
	return out, nil
}

func (f *fakePortfolioRepo) FindVisibleByOwner(db *gorm.DB, ownerID string) ([]models.PortfolioItem, error) {
	var out []models.PortfolioItem
	for _, item := range f.items {
		if item.UserID == ownerID && item.IsVisible {
			out = append(out, *item)
		}
	}
	sortItems(out)
	return out, nil
}

func (f *fakePortfolioRepo) Update(db *gorm.DB, item *models.PortfolioItem) error {
	stored, ok := f.items[item.ID]
	if !ok || stored.UserID != item.UserID {
		return repositories.ErrItemNotFound
	}
	clone := *item
	clone.CreatedAt = stored.CreatedAt
	f.items[item.ID] = &clone
	return nil
}

func (f *fakePortfolioRepo) Delete(db *gorm.DB, ownerID, id string) (*models.PortfolioItem, error) {
	item, ok := f.items[id]
	if !ok || item.UserID != ownerID {
		return nil, repositories.ErrItemNotFound
	}
	delete(f.items, id)
	for _, other := range f.items {
		if other.UserID == ownerID && other.OrderIndex > item.OrderIndex {
			other.OrderIndex--
		}
	}
	return item, nil
}

func (f *fakePortfolioRepo) Reorder(db *gorm.DB, ownerID string, itemIDs []string) error {
	for position, id := range itemIDs {
		if item, ok := f.items[id]; ok && item.UserID == ownerID {
			item.OrderIndex = position
		}
	}
	return nil
}

func (f *fakePortfolioRepo) CountByOwner(db *gorm.DB, ownerID string) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.UserID == ownerID {
			count++
		}
	}
	return count, nil
}

func sortItems(items []models.PortfolioItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].OrderIndex != items[j].OrderIndex {
			return items[i].OrderIndex < items[j].OrderIndex
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

type fakeUserRepo struct {
	users        map[string]*models.User
	itemsPerUser map[string]int64
	seq          int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:        make(map[string]*models.User),
		itemsPerUser: make(map[string]int64),
	}
}

func (f *fakeUserRepo) add(user models.User) *models.User {
	if user.ID == "" {
		f.seq++
		user.ID = fmt.Sprintf("user-%d", f.seq)
	}
	f.users[user.ID] = &user
	return &user
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	stored := f.add(*user)
	user.ID = stored.ID
	return nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateProfile(db *gorm.DB, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) List(db *gorm.DB, offset, limit int) ([]repositories.UserWithItemCount, int64, error) {
	var entries []repositories.UserWithItemCount
	for _, user := range f.users {
		entries = append(entries, repositories.UserWithItemCount{
			User:      *user,
			ItemCount: f.itemsPerUser[user.ID],
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	total := int64(len(entries))
	if offset > len(entries) {
		return nil, total, nil
	}
	entries = entries[offset:]
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, total, nil
}

func (f *fakeUserRepo) DeleteWithItems(db *gorm.DB, userID string) (int64, error) {
	if _, ok := f.users[userID]; !ok {
		return 0, repositories.ErrUserNotFound
	}
	delete(f.users, userID)
	removed := f.itemsPerUser[userID]
	delete(f.itemsPerUser, userID)
	return removed, nil
}

// fakeBlobStore records deletions and can be told to fail.
type fakeBlobStore struct {
	deleted map[models.ResourceKind][]string
	failAll bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{deleted: make(map[models.ResourceKind][]string)}
}

func (f *fakeBlobStore) SignUpload(ctx context.Context, folder string, kind models.ResourceKind, expiry time.Duration) (*storage.SignedUpload, error) {
	if f.failAll {
		return nil, errors.New("blob store unavailable")
	}
	key := folder + "/fixed-key"
	return &storage.SignedUpload{
		UploadURL: "https://blobs.test/" + string(kind) + "/" + key,
		Key:       key,
		Folder:    folder,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, externalID string, kind models.ResourceKind) error {
	if f.failAll {
		return errors.New("blob store unavailable")
	}
	f.deleted[kind] = append(f.deleted[kind], externalID)
	return nil
}

func (f *fakeBlobStore) DeleteMany(ctx context.Context, externalIDs []string, kind models.ResourceKind) error {
	if f.failAll {
		return errors.New("blob store unavailable")
	}
	f.deleted[kind] = append(f.deleted[kind], externalIDs...)
	return nil
}
