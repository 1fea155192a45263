package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/working2003/breedingo/domain"
)

// BreedingRepositoryImpl implements domain.BreedingRepository using GORM
type BreedingRepositoryImpl struct {
	db *gorm.DB
}

// DBBreedingRecord represents the database model for a pregEasy entry
type DBBreedingRecord struct {
	ID                         uint   `gorm:"primaryKey"`
	UserID                     uint   `gorm:"index;not null"`
	Type                       string `gorm:"size:32;not null"`
	Breed                      string `gorm:"size:128;not null"`
	TagNumber                  string `gorm:"size:64;not null"`
	DateOfLastDelivery         time.Time `gorm:"not null"`
	DateOfFirstHeat            time.Time `gorm:"not null"`
	DateOfInsemination         time.Time `gorm:"not null"`
	DateOfBirth                *time.Time
	NumberOfLactation          int     `gorm:"not null;default:0"`
	DailyMilkProduction        float64 `gorm:"not null;default:0"`
	EstimatedDailyMilkCapacity float64 `gorm:"not null;default:0"`
	IsPregnant                 bool    `gorm:"not null;default:false"`
	UsedSemen                  string  `gorm:"size:128;not null"`
	IsDeworming                bool    `gorm:"not null;default:false"`
	IsVaccination              bool    `gorm:"not null;default:false"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBBreedingRecord) TableName() string {
	return "preg_easies"
}

// NewBreedingRepository creates a new breeding record repository
func NewBreedingRepository(db *gorm.DB) domain.BreedingRepository {
	return &BreedingRepositoryImpl{db: db}
}

// Create implements domain.BreedingRepository
func (r *BreedingRepositoryImpl) Create(ctx context.Context, record *domain.BreedingRecord) error {
	dbRecord := &DBBreedingRecord{
		UserID:                     record.UserID,
		Type:                       record.Type,
		Breed:                      record.Breed,
		TagNumber:                  record.TagNumber,
		DateOfLastDelivery:         record.DateOfLastDelivery,
		DateOfFirstHeat:            record.DateOfFirstHeat,
		DateOfInsemination:         record.DateOfInsemination,
		DateOfBirth:                record.DateOfBirth,
		NumberOfLactation:          record.NumberOfLactation,
		DailyMilkProduction:        record.DailyMilkProduction,
		EstimatedDailyMilkCapacity: record.EstimatedDailyMilkCapacity,
		IsPregnant:                 record.IsPregnant,
		UsedSemen:                  record.UsedSemen,
		IsDeworming:                record.IsDeworming,
		IsVaccination:              record.IsVaccination,
	}
	if err := r.db.WithContext(ctx).Create(dbRecord).Error; err != nil {
		return err
	}
	record.ID = dbRecord.ID
	return nil
}

// FindByOwner implements domain.BreedingRepository
func (r *BreedingRepositoryImpl) FindByOwner(ctx context.Context, userID uint) ([]domain.BreedingRecord, error) {
	var rows []DBBreedingRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.BreedingRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.BreedingRecord{
			ID:                         row.ID,
			UserID:                     row.UserID,
			Type:                       row.Type,
			Breed:                      row.Breed,
			TagNumber:                  row.TagNumber,
			DateOfLastDelivery:         row.DateOfLastDelivery,
			DateOfFirstHeat:            row.DateOfFirstHeat,
			DateOfInsemination:         row.DateOfInsemination,
			DateOfBirth:                row.DateOfBirth,
			NumberOfLactation:          row.NumberOfLactation,
			DailyMilkProduction:        row.DailyMilkProduction,
			EstimatedDailyMilkCapacity: row.EstimatedDailyMilkCapacity,
			IsPregnant:                 row.IsPregnant,
			UsedSemen:                  row.UsedSemen,
			IsDeworming:                row.IsDeworming,
			IsVaccination:              row.IsVaccination,
		})
	}
	return out, nil
}
