package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByMobile(ctx context.Context, mobile string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	ApplyProfile(ctx context.Context, userID uint, patch *ProfileUpdate) (*User, error)
	TouchLogin(ctx context.Context, userID uint, at time.Time) error
}

// WalletRepository defines coin balance and ledger data access.
// DebitForContact must perform the balance check, the decrement, the ledger
// append and the seller lookup atomically.
type WalletRepository interface {
	CreateWallet(ctx context.Context, userID uint, openingBalance int64) error
	FindByUserID(ctx context.Context, userID uint) (*CoinWallet, error)
	DebitForContact(ctx context.Context, buyerID, sellerID uint, amount int64, description string) (sellerMobile string, err error)
	Transactions(ctx context.Context, userID uint) ([]Transaction, error)
}

// ListingRepository defines cattle listing and bookmark data access
type ListingRepository interface {
	Create(ctx context.Context, listing *CattleListing) error
	FindByID(ctx context.Context, id uint) (*CattleListing, error)
	Page(ctx context.Context, page, limit int) (*ListingPage, error)
	FindByOwner(ctx context.Context, userID uint) ([]CattleListing, error)
	DeleteOwned(ctx context.Context, userID, listingID uint) error
	Save(ctx context.Context, userID, listingID uint) error
	SavedByUser(ctx context.Context, userID uint) ([]CattleListing, error)
	DeleteSaved(ctx context.Context, userID, listingID uint) error
}

// BreedingRepository defines pregEasy record data access
type BreedingRepository interface {
	Create(ctx context.Context, record *BreedingRecord) error
	FindByOwner(ctx context.Context, userID uint) ([]BreedingRecord, error)
}

// ChallengeStore holds the pending OTP challenge per mobile number.
// Put replaces any existing challenge and resets its attempt counter.
type ChallengeStore interface {
	Put(ctx context.Context, challenge *OTPChallenge, ttl time.Duration) error
	Get(ctx context.Context, mobile string) (*OTPChallenge, error)
	IncrAttempts(ctx context.Context, mobile string) (int64, error)
	DecrAttempts(ctx context.Context, mobile string) error
	Delete(ctx context.Context, mobile string) error
}

// OTPProvider wraps the third-party SMS OTP delivery/verification API
type OTPProvider interface {
	Send(ctx context.Context, mobile string) (orderID string, err error)
	Check(ctx context.Context, mobile, code string) (bool, error)
}

// OTPService manages the challenge lifecycle around the provider calls
type OTPService interface {
	Begin(ctx context.Context, mobile string) (orderID string, err error)
	Verify(ctx context.Context, mobile, code string) error
}

// AuthService defines the OTP login flow
type AuthService interface {
	RequestOTP(ctx context.Context, mobile string) (orderID string, err error)
	VerifyOTP(ctx context.Context, mobile, code string) (*AuthResult, error)
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// WalletService defines coin wallet business logic
type WalletService interface {
	Balance(ctx context.Context, userID uint) (int64, error)
	Transactions(ctx context.Context, userID uint) ([]Transaction, error)
	UnlockContact(ctx context.Context, buyerID, sellerID uint) (sellerMobile string, err error)
}

// UserService defines profile business logic
type UserService interface {
	Profile(ctx context.Context, userID uint) (*User, int64, error)
	Register(ctx context.Context, userID uint, patch *ProfileUpdate) error
	UpdateProfile(ctx context.Context, userID uint, patch *ProfileUpdate) (*User, error)
}

// ListingService defines cattle listing business logic
type ListingService interface {
	Create(ctx context.Context, listing *CattleListing, images []ImageUpload) error
	Get(ctx context.Context, id uint) (*CattleListing, error)
	Page(ctx context.Context, page, limit int) (*ListingPage, error)
	OwnedBy(ctx context.Context, userID uint) ([]CattleListing, error)
	Delete(ctx context.Context, userID, listingID uint) error
	SaveListing(ctx context.Context, userID, listingID uint) error
	SavedListings(ctx context.Context, userID uint) ([]CattleListing, error)
	Unsave(ctx context.Context, userID, listingID uint) error
}

// ImageUpload is one in-memory uploaded file pending storage
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ImageStore persists uploaded images and returns their stored path
type ImageStore interface {
	Store(data []byte, originalName, folder string) (string, error)
}
