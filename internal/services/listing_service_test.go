package services

import (
	"context"
	"errors"
	"testing"

	"github.com/working2003/breedingo/domain"
	"github.com/working2003/breedingo/internal/mocks"
)

func pngUpload(name string) domain.ImageUpload {
	return domain.ImageUpload{
		FileName:    name,
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}
}

func TestListingService_Create(t *testing.T) {
	ctx := context.Background()

	var created *domain.CattleListing
	repo := mocks.NewMockListingRepository()
	repo.CreateFunc = func(ctx context.Context, listing *domain.CattleListing) error {
		created = listing
		return nil
	}

	store := mocks.NewMockImageStore()
	store.StoreFunc = func(data []byte, originalName, folder string) (string, error) {
		return "uploads/cattle/" + originalName, nil
	}

	svc := NewListingService(repo, store)
	listing := &domain.CattleListing{
		UserID:              7,
		Type:                domain.CattleTypeCow,
		Price:               45000,
		DailyMilkProduction: 12,
	}
	images := []domain.ImageUpload{pngUpload("front.png"), pngUpload("side.png")}
	if err := svc.Create(ctx, listing, images); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("listing was not persisted")
	}
	if len(created.Images) != 2 {
		t.Fatalf("expected 2 image paths, got %d", len(created.Images))
	}
	if created.Images[0].FilePath != "uploads/cattle/front.png" {
		t.Errorf("unexpected image path %s", created.Images[0].FilePath)
	}
}

func TestListingService_Create_TooManyImages(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMockListingRepository()
	store := mocks.NewMockImageStore()
	svc := NewListingService(repo, store)

	images := []domain.ImageUpload{pngUpload("a.png"), pngUpload("b.png"), pngUpload("c.png")}
	err := svc.Create(ctx, &domain.CattleListing{UserID: 7}, images)
	if !errors.Is(err, domain.ErrTooManyImages) {
		t.Fatalf("expected ErrTooManyImages, got %v", err)
	}
	if store.StoreCalls != 0 {
		t.Errorf("no image may be stored on rejection, got %d calls", store.StoreCalls)
	}
}

func TestListingService_Create_NotAnImage(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMockListingRepository()
	store := mocks.NewMockImageStore()
	svc := NewListingService(repo, store)

	images := []domain.ImageUpload{{
		FileName:    "notes.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	}}
	err := svc.Create(ctx, &domain.CattleListing{UserID: 7}, images)
	if !errors.Is(err, domain.ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
}

func TestListingService_Create_NoImages(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMockListingRepository()
	repo.CreateFunc = func(ctx context.Context, listing *domain.CattleListing) error {
		return nil
	}
	svc := NewListingService(repo, mocks.NewMockImageStore())

	if err := svc.Create(ctx, &domain.CattleListing{UserID: 7}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListingService_SaveListing(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMockListingRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.CattleListing, error) {
		if id == 5 {
			return &domain.CattleListing{ID: 5}, nil
		}
		return nil, domain.ErrListingNotFound
	}
	saved := false
	repo.SaveFunc = func(ctx context.Context, userID, listingID uint) error {
		saved = true
		return nil
	}

	svc := NewListingService(repo, mocks.NewMockImageStore())
	if err := svc.SaveListing(ctx, 7, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved {
		t.Error("save was not recorded")
	}

	if err := svc.SaveListing(ctx, 7, 99); !errors.Is(err, domain.ErrListingNotFound) {
		t.Errorf("expected ErrListingNotFound for missing listing, got %v", err)
	}
}

func TestListingService_Delete_OwnerScoped(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMockListingRepository()
	repo.DeleteOwnedFunc = func(ctx context.Context, userID, listingID uint) error {
		if userID != 7 {
			return domain.ErrListingNotFound
		}
		return nil
	}

	svc := NewListingService(repo, mocks.NewMockImageStore())
	if err := svc.Delete(ctx, 7, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, 8, 5); !errors.Is(err, domain.ErrListingNotFound) {
		t.Errorf("expected ErrListingNotFound for foreign owner, got %v", err)
	}
}
