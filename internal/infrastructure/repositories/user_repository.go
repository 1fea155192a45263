package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/working2003/breedingo/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID               uint   `gorm:"primaryKey"`
	FirstName        string `gorm:"size:128"`
	LastName         string `gorm:"size:128"`
	MobileNumber     string `gorm:"uniqueIndex;size:10;not null"`
	FarmName         string `gorm:"size:255"`
	State            string `gorm:"size:128"`
	District         string `gorm:"size:128"`
	Taluka           string `gorm:"size:128"`
	Village          string `gorm:"size:128"`
	PinCode          int
	CowCount         int    `gorm:"not null;default:0"`
	BuffaloCount     int    `gorm:"not null;default:0"`
	CowCalfCount     int    `gorm:"not null;default:0"`
	BuffaloCalfCount int    `gorm:"not null;default:0"`
	Status           string `gorm:"index;size:32;not null"`
	LastLogIn        *time.Time
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	user.CreatedOn = dbUser.CreatedAt
	return nil
}

// FindByMobile implements domain.UserRepository
func (r *UserRepositoryImpl) FindByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("mobile_number = ?", mobile).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// ApplyProfile implements domain.UserRepository. Only non-nil patch fields
// are written.
func (r *UserRepositoryImpl) ApplyProfile(ctx context.Context, userID uint, patch *domain.ProfileUpdate) (*domain.User, error) {
	updates := map[string]interface{}{}
	setStr := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			updates[col] = *v
		}
	}
	setStr("first_name", patch.FirstName)
	setStr("last_name", patch.LastName)
	setStr("farm_name", patch.FarmName)
	setStr("state", patch.State)
	setStr("district", patch.District)
	setStr("taluka", patch.Taluka)
	setStr("village", patch.Village)
	setInt("pin_code", patch.PinCode)
	setInt("cow_count", patch.CowCount)
	setInt("buffalo_count", patch.BuffaloCount)
	setInt("cow_calf_count", patch.CowCalfCount)
	setInt("buffalo_calf_count", patch.BuffaloCalfCount)

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrUserNotFound
		}
	}

	return r.FindByID(ctx, userID)
}

// TouchLogin implements domain.UserRepository. Records a successful login
// and moves the account to Active.
func (r *UserRepositoryImpl) TouchLogin(ctx context.Context, userID uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"last_log_in": at,
		"status":      domain.StatusActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		MobileNumber:     user.MobileNumber,
		FarmName:         user.FarmName,
		State:            user.State,
		District:         user.District,
		Taluka:           user.Taluka,
		Village:          user.Village,
		PinCode:          user.PinCode,
		CowCount:         user.CowCount,
		BuffaloCount:     user.BuffaloCount,
		CowCalfCount:     user.CowCalfCount,
		BuffaloCalfCount: user.BuffaloCalfCount,
		Status:           user.Status,
		LastLogIn:        user.LastLogIn,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:               dbUser.ID,
		FirstName:        dbUser.FirstName,
		LastName:         dbUser.LastName,
		MobileNumber:     dbUser.MobileNumber,
		FarmName:         dbUser.FarmName,
		State:            dbUser.State,
		District:         dbUser.District,
		Taluka:           dbUser.Taluka,
		Village:          dbUser.Village,
		PinCode:          dbUser.PinCode,
		CowCount:         dbUser.CowCount,
		BuffaloCount:     dbUser.BuffaloCount,
		CowCalfCount:     dbUser.CowCalfCount,
		BuffaloCalfCount: dbUser.BuffaloCalfCount,
		Status:           dbUser.Status,
		CreatedOn:        dbUser.CreatedAt,
		LastLogIn:        dbUser.LastLogIn,
	}
}
