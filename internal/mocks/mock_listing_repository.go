package mocks

import (
	"context"

	"github.com/working2003/breedingo/domain"
)

// MockListingRepository implements domain.ListingRepository for testing
type MockListingRepository struct {
	CreateFunc      func(ctx context.Context, listing *domain.CattleListing) error
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.CattleListing, error)
	PageFunc        func(ctx context.Context, page, limit int) (*domain.ListingPage, error)
	FindByOwnerFunc func(ctx context.Context, userID uint) ([]domain.CattleListing, error)
	DeleteOwnedFunc func(ctx context.Context, userID, listingID uint) error
	SaveFunc        func(ctx context.Context, userID, listingID uint) error
	SavedByUserFunc func(ctx context.Context, userID uint) ([]domain.CattleListing, error)
	DeleteSavedFunc func(ctx context.Context, userID, listingID uint) error
}

// NewMockListingRepository creates a new MockListingRepository with default behaviors
func NewMockListingRepository() *MockListingRepository {
	return &MockListingRepository{}
}

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.CattleListing) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, listing)
	}
	listing.ID = 1
	return nil
}

func (m *MockListingRepository) FindByID(ctx context.Context, id uint) (*domain.CattleListing, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrListingNotFound
}

func (m *MockListingRepository) Page(ctx context.Context, page, limit int) (*domain.ListingPage, error) {
	if m.PageFunc != nil {
		return m.PageFunc(ctx, page, limit)
	}
	return &domain.ListingPage{CurrentPage: page}, nil
}

func (m *MockListingRepository) FindByOwner(ctx context.Context, userID uint) ([]domain.CattleListing, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, userID)
	}
	return []domain.CattleListing{}, nil
}

func (m *MockListingRepository) DeleteOwned(ctx context.Context, userID, listingID uint) error {
	if m.DeleteOwnedFunc != nil {
		return m.DeleteOwnedFunc(ctx, userID, listingID)
	}
	return domain.ErrListingNotFound
}

func (m *MockListingRepository) Save(ctx context.Context, userID, listingID uint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, userID, listingID)
	}
	return nil
}

func (m *MockListingRepository) SavedByUser(ctx context.Context, userID uint) ([]domain.CattleListing, error) {
	if m.SavedByUserFunc != nil {
		return m.SavedByUserFunc(ctx, userID)
	}
	return []domain.CattleListing{}, nil
}

func (m *MockListingRepository) DeleteSaved(ctx context.Context, userID, listingID uint) error {
	if m.DeleteSavedFunc != nil {
		return m.DeleteSavedFunc(ctx, userID, listingID)
	}
	return domain.ErrSaveNotFound
}

// MockImageStore implements domain.ImageStore for testing
type MockImageStore struct {
	StoreFunc  func(data []byte, originalName, folder string) (string, error)
	StoreCalls int
}

// NewMockImageStore creates a new MockImageStore with default behaviors
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{}
}

func (m *MockImageStore) Store(data []byte, originalName, folder string) (string, error) {
	m.StoreCalls++
	if m.StoreFunc != nil {
		return m.StoreFunc(data, originalName, folder)
	}
	return "uploads/" + folder + "/" + originalName, nil
}
