package repositories

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/working2003/breedingo/domain"
)

// ListingRepositoryImpl implements domain.ListingRepository using GORM
type ListingRepositoryImpl struct {
	db *gorm.DB
}

// DBCattleListing represents the database model for a cattle-for-sale record
type DBCattleListing struct {
	ID                         uint   `gorm:"primaryKey"`
	UserID                     uint   `gorm:"index;not null"`
	Type                       string `gorm:"size:32;not null"`
	CattleBreed                string `gorm:"size:128;not null"`
	Images                     []DBListingImage `gorm:"foreignKey:ListingID"`
	DateOfDelivery             string `gorm:"size:32"`
	DateOfBirth                string `gorm:"size:32"`
	NumberOfLactation          int    `gorm:"not null;default:0"`
	DailyMilkProduction        float64 `gorm:"not null;default:0"`
	EstimatedDailyMilkCapacity float64 `gorm:"not null;default:0"`
	IsPregnant                 string `gorm:"size:8;default:No"`
	UsedSemen                  string `gorm:"size:128"`
	IsDeworming                string `gorm:"size:8;not null;default:No"`
	IsVaccination              string `gorm:"size:8;not null;default:No"`
	IsHorn                     string `gorm:"size:8;not null;default:No"`
	Weight                     float64 `gorm:"not null;default:0"`
	Price                      float64 `gorm:"not null;default:0"`
	NoOfCalving                string `gorm:"size:32"`
	TagNumber                  string `gorm:"size:64"`
	DateOfInsemination         string `gorm:"size:32"`
	CreatedAt                  time.Time `gorm:"index"`
	UpdatedAt                  time.Time
	DeletedAt                  gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBCattleListing) TableName() string {
	return "cattle_sells"
}

// DBListingImage is one stored image reference on a listing
type DBListingImage struct {
	ID        uint   `gorm:"primaryKey"`
	ListingID uint   `gorm:"index;not null"`
	FilePath  string `gorm:"size:512;not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBListingImage) TableName() string {
	return "cattle_sell_images"
}

// DBSavedListing is a user's bookmark of a listing. The row is hard-deleted
// on unsave; a soft-delete tombstone would keep occupying the unique index
// and block re-saving the same listing.
type DBSavedListing struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index:idx_saved_user_listing,unique;not null"`
	ListingID uint `gorm:"index:idx_saved_user_listing,unique;not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBSavedListing) TableName() string {
	return "save_cattle_sells"
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) domain.ListingRepository {
	return &ListingRepositoryImpl{db: db}
}

// Create implements domain.ListingRepository
func (r *ListingRepositoryImpl) Create(ctx context.Context, listing *domain.CattleListing) error {
	dbListing := domainListingToDB(listing)
	if err := r.db.WithContext(ctx).Create(dbListing).Error; err != nil {
		return err
	}
	listing.ID = dbListing.ID
	listing.CreatedAt = dbListing.CreatedAt
	return nil
}

// FindByID implements domain.ListingRepository
func (r *ListingRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.CattleListing, error) {
	var dbListing DBCattleListing
	err := r.db.WithContext(ctx).Preload("Images").Where("id = ?", id).First(&dbListing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return dbListingToDomain(&dbListing), nil
}

// Page implements domain.ListingRepository
func (r *ListingRepositoryImpl) Page(ctx context.Context, page, limit int) (*domain.ListingPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&DBCattleListing{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []DBCattleListing
	err := r.db.WithContext(ctx).
		Preload("Images").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	listings := make([]domain.CattleListing, 0, len(rows))
	for i := range rows {
		listings = append(listings, *dbListingToDomain(&rows[i]))
	}

	return &domain.ListingPage{
		Listings:    listings,
		CurrentPage: page,
		TotalRecord: total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// FindByOwner implements domain.ListingRepository
func (r *ListingRepositoryImpl) FindByOwner(ctx context.Context, userID uint) ([]domain.CattleListing, error) {
	var rows []DBCattleListing
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	listings := make([]domain.CattleListing, 0, len(rows))
	for i := range rows {
		listings = append(listings, *dbListingToDomain(&rows[i]))
	}
	return listings, nil
}

// DeleteOwned implements domain.ListingRepository. Listings are hard-deleted
// by their owner only.
func (r *ListingRepositoryImpl) DeleteOwned(ctx context.Context, userID, listingID uint) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND id = ?", userID, listingID).
		Delete(&DBCattleListing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// Save implements domain.ListingRepository
func (r *ListingRepositoryImpl) Save(ctx context.Context, userID, listingID uint) error {
	saved := &DBSavedListing{UserID: userID, ListingID: listingID}
	return r.db.WithContext(ctx).Create(saved).Error
}

// SavedByUser implements domain.ListingRepository. Returns the listings the
// user has bookmarked, with their images.
func (r *ListingRepositoryImpl) SavedByUser(ctx context.Context, userID uint) ([]domain.CattleListing, error) {
	var saved []DBSavedListing
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		return []domain.CattleListing{}, nil
	}

	ids := make([]uint, 0, len(saved))
	for _, s := range saved {
		ids = append(ids, s.ListingID)
	}

	var rows []DBCattleListing
	if err := r.db.WithContext(ctx).Preload("Images").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]domain.CattleListing, 0, len(rows))
	for i := range rows {
		listings = append(listings, *dbListingToDomain(&rows[i]))
	}
	return listings, nil
}

// DeleteSaved implements domain.ListingRepository
func (r *ListingRepositoryImpl) DeleteSaved(ctx context.Context, userID, listingID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&DBSavedListing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSaveNotFound
	}
	return nil
}

func domainListingToDB(listing *domain.CattleListing) *DBCattleListing {
	images := make([]DBListingImage, 0, len(listing.Images))
	for _, img := range listing.Images {
		images = append(images, DBListingImage{FilePath: img.FilePath})
	}
	return &DBCattleListing{
		ID:                         listing.ID,
		UserID:                     listing.UserID,
		Type:                       listing.Type,
		CattleBreed:                listing.CattleBreed,
		Images:                     images,
		DateOfDelivery:             listing.DateOfDelivery,
		DateOfBirth:                listing.DateOfBirth,
		NumberOfLactation:          listing.NumberOfLactation,
		DailyMilkProduction:        listing.DailyMilkProduction,
		EstimatedDailyMilkCapacity: listing.EstimatedDailyMilkCapacity,
		IsPregnant:                 listing.IsPregnant,
		UsedSemen:                  listing.UsedSemen,
		IsDeworming:                listing.IsDeworming,
		IsVaccination:              listing.IsVaccination,
		IsHorn:                     listing.IsHorn,
		Weight:                     listing.Weight,
		Price:                      listing.Price,
		NoOfCalving:                listing.NoOfCalving,
		TagNumber:                  listing.TagNumber,
		DateOfInsemination:         listing.DateOfInsemination,
	}
}

func dbListingToDomain(dbListing *DBCattleListing) *domain.CattleListing {
	images := make([]domain.ListingImage, 0, len(dbListing.Images))
	for _, img := range dbListing.Images {
		images = append(images, domain.ListingImage{FilePath: img.FilePath, UploadDate: img.CreatedAt})
	}
	return &domain.CattleListing{
		ID:                         dbListing.ID,
		UserID:                     dbListing.UserID,
		Type:                       dbListing.Type,
		CattleBreed:                dbListing.CattleBreed,
		Images:                     images,
		DateOfDelivery:             dbListing.DateOfDelivery,
		DateOfBirth:                dbListing.DateOfBirth,
		NumberOfLactation:          dbListing.NumberOfLactation,
		DailyMilkProduction:        dbListing.DailyMilkProduction,
		EstimatedDailyMilkCapacity: dbListing.EstimatedDailyMilkCapacity,
		IsPregnant:                 dbListing.IsPregnant,
		UsedSemen:                  dbListing.UsedSemen,
		IsDeworming:                dbListing.IsDeworming,
		IsVaccination:              dbListing.IsVaccination,
		IsHorn:                     dbListing.IsHorn,
		Weight:                     dbListing.Weight,
		Price:                      dbListing.Price,
		NoOfCalving:                dbListing.NoOfCalving,
		TagNumber:                  dbListing.TagNumber,
		DateOfInsemination:         dbListing.DateOfInsemination,
		CreatedAt:                  dbListing.CreatedAt,
	}
}
