package services

import (
	"context"
	"strings"

	"github.com/working2003/breedingo/domain"
)

const maxListingImages = 2

// ListingServiceImpl implements domain.ListingService
type ListingServiceImpl struct {
	listingRepo domain.ListingRepository
	imageStore  domain.ImageStore
}

// NewListingService creates a new listing service
func NewListingService(listingRepo domain.ListingRepository, imageStore domain.ImageStore) domain.ListingService {
	return &ListingServiceImpl{
		listingRepo: listingRepo,
		imageStore:  imageStore,
	}
}

// Create implements domain.ListingService. Stores up to two images and
// persists the listing with their paths.
func (s *ListingServiceImpl) Create(ctx context.Context, listing *domain.CattleListing, images []domain.ImageUpload) error {
	if len(images) > maxListingImages {
		return domain.ErrTooManyImages
	}

	for _, img := range images {
		if !strings.HasPrefix(img.ContentType, "image/") {
			return domain.ErrNotAnImage
		}
		path, err := s.imageStore.Store(img.Data, img.FileName, "cattle")
		if err != nil {
			return err
		}
		listing.Images = append(listing.Images, domain.ListingImage{FilePath: path})
	}

	return s.listingRepo.Create(ctx, listing)
}

// Get implements domain.ListingService
func (s *ListingServiceImpl) Get(ctx context.Context, id uint) (*domain.CattleListing, error) {
	return s.listingRepo.FindByID(ctx, id)
}

// Page implements domain.ListingService
func (s *ListingServiceImpl) Page(ctx context.Context, page, limit int) (*domain.ListingPage, error) {
	return s.listingRepo.Page(ctx, page, limit)
}

// OwnedBy implements domain.ListingService
func (s *ListingServiceImpl) OwnedBy(ctx context.Context, userID uint) ([]domain.CattleListing, error) {
	return s.listingRepo.FindByOwner(ctx, userID)
}

// Delete implements domain.ListingService. Owner-scoped hard delete.
func (s *ListingServiceImpl) Delete(ctx context.Context, userID, listingID uint) error {
	return s.listingRepo.DeleteOwned(ctx, userID, listingID)
}

// SaveListing implements domain.ListingService
func (s *ListingServiceImpl) SaveListing(ctx context.Context, userID, listingID uint) error {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		return err
	}
	return s.listingRepo.Save(ctx, userID, listingID)
}

// SavedListings implements domain.ListingService
func (s *ListingServiceImpl) SavedListings(ctx context.Context, userID uint) ([]domain.CattleListing, error) {
	return s.listingRepo.SavedByUser(ctx, userID)
}

// Unsave implements domain.ListingService
func (s *ListingServiceImpl) Unsave(ctx context.Context, userID, listingID uint) error {
	return s.listingRepo.DeleteSaved(ctx, userID, listingID)
}
