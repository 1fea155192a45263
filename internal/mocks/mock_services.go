package mocks

import (
	"context"

	"github.com/working2003/breedingo/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	BeginFunc  func(ctx context.Context, mobile string) (string, error)
	VerifyFunc func(ctx context.Context, mobile, code string) error
}

func NewMockOTPService() *MockOTPService { return &MockOTPService{} }

func (m *MockOTPService) Begin(ctx context.Context, mobile string) (string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, mobile)
	}
	return "VE_mock_order", nil
}

func (m *MockOTPService) Verify(ctx context.Context, mobile, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, mobile, code)
	}
	return nil
}

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RequestOTPFunc func(ctx context.Context, mobile string) (string, error)
	VerifyOTPFunc  func(ctx context.Context, mobile, code string) (*domain.AuthResult, error)
}

func NewMockAuthService() *MockAuthService { return &MockAuthService{} }

func (m *MockAuthService) RequestOTP(ctx context.Context, mobile string) (string, error) {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, mobile)
	}
	return "VE_mock_order", nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, mobile, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, mobile, code)
	}
	return nil, domain.ErrNoChallenge
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService { return &MockTokenService{} }

func (m *MockTokenService) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	return "mock-token", nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockUserService implements domain.UserService for testing
type MockUserService struct {
	ProfileFunc       func(ctx context.Context, userID uint) (*domain.User, int64, error)
	RegisterFunc      func(ctx context.Context, userID uint, patch *domain.ProfileUpdate) error
	UpdateProfileFunc func(ctx context.Context, userID uint, patch *domain.ProfileUpdate) (*domain.User, error)
}

func NewMockUserService() *MockUserService { return &MockUserService{} }

func (m *MockUserService) Profile(ctx context.Context, userID uint) (*domain.User, int64, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, 0, domain.ErrUserNotFound
}

func (m *MockUserService) Register(ctx context.Context, userID uint, patch *domain.ProfileUpdate) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, userID, patch)
	}
	return nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uint, patch *domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, patch)
	}
	return nil, domain.ErrUserNotFound
}

// MockListingService implements domain.ListingService for testing
type MockListingService struct {
	CreateFunc        func(ctx context.Context, listing *domain.CattleListing, images []domain.ImageUpload) error
	GetFunc           func(ctx context.Context, id uint) (*domain.CattleListing, error)
	PageFunc          func(ctx context.Context, page, limit int) (*domain.ListingPage, error)
	OwnedByFunc       func(ctx context.Context, userID uint) ([]domain.CattleListing, error)
	DeleteFunc        func(ctx context.Context, userID, listingID uint) error
	SaveListingFunc   func(ctx context.Context, userID, listingID uint) error
	SavedListingsFunc func(ctx context.Context, userID uint) ([]domain.CattleListing, error)
	UnsaveFunc        func(ctx context.Context, userID, listingID uint) error
}

func NewMockListingService() *MockListingService { return &MockListingService{} }

func (m *MockListingService) Create(ctx context.Context, listing *domain.CattleListing, images []domain.ImageUpload) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, listing, images)
	}
	return nil
}

func (m *MockListingService) Get(ctx context.Context, id uint) (*domain.CattleListing, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrListingNotFound
}

func (m *MockListingService) Page(ctx context.Context, page, limit int) (*domain.ListingPage, error) {
	if m.PageFunc != nil {
		return m.PageFunc(ctx, page, limit)
	}
	return &domain.ListingPage{CurrentPage: page}, nil
}

func (m *MockListingService) OwnedBy(ctx context.Context, userID uint) ([]domain.CattleListing, error) {
	if m.OwnedByFunc != nil {
		return m.OwnedByFunc(ctx, userID)
	}
	return []domain.CattleListing{}, nil
}

func (m *MockListingService) Delete(ctx context.Context, userID, listingID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, listingID)
	}
	return nil
}

func (m *MockListingService) SaveListing(ctx context.Context, userID, listingID uint) error {
	if m.SaveListingFunc != nil {
		return m.SaveListingFunc(ctx, userID, listingID)
	}
	return nil
}

func (m *MockListingService) SavedListings(ctx context.Context, userID uint) ([]domain.CattleListing, error) {
	if m.SavedListingsFunc != nil {
		return m.SavedListingsFunc(ctx, userID)
	}
	return []domain.CattleListing{}, nil
}

func (m *MockListingService) Unsave(ctx context.Context, userID, listingID uint) error {
	if m.UnsaveFunc != nil {
		return m.UnsaveFunc(ctx, userID, listingID)
	}
	return nil
}

// MockWalletService implements domain.WalletService for testing
type MockWalletService struct {
	BalanceFunc       func(ctx context.Context, userID uint) (int64, error)
	TransactionsFunc  func(ctx context.Context, userID uint) ([]domain.Transaction, error)
	UnlockContactFunc func(ctx context.Context, buyerID, sellerID uint) (string, error)
}

func NewMockWalletService() *MockWalletService { return &MockWalletService{} }

func (m *MockWalletService) Balance(ctx context.Context, userID uint) (int64, error) {
	if m.BalanceFunc != nil {
		return m.BalanceFunc(ctx, userID)
	}
	return 0, domain.ErrWalletNotFound
}

func (m *MockWalletService) Transactions(ctx context.Context, userID uint) ([]domain.Transaction, error) {
	if m.TransactionsFunc != nil {
		return m.TransactionsFunc(ctx, userID)
	}
	return []domain.Transaction{}, nil
}

func (m *MockWalletService) UnlockContact(ctx context.Context, buyerID, sellerID uint) (string, error) {
	if m.UnlockContactFunc != nil {
		return m.UnlockContactFunc(ctx, buyerID, sellerID)
	}
	return "", domain.ErrWalletNotFound
}
