package mocks

import (
	"context"

	"github.com/working2003/breedingo/domain"
)

// MockWalletRepository implements domain.WalletRepository for testing
type MockWalletRepository struct {
	CreateWalletFunc    func(ctx context.Context, userID uint, openingBalance int64) error
	FindByUserIDFunc    func(ctx context.Context, userID uint) (*domain.CoinWallet, error)
	DebitForContactFunc func(ctx context.Context, buyerID, sellerID uint, amount int64, description string) (string, error)
	TransactionsFunc    func(ctx context.Context, userID uint) ([]domain.Transaction, error)
}

// NewMockWalletRepository creates a new MockWalletRepository with default behaviors
func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{}
}

func (m *MockWalletRepository) CreateWallet(ctx context.Context, userID uint, openingBalance int64) error {
	if m.CreateWalletFunc != nil {
		return m.CreateWalletFunc(ctx, userID, openingBalance)
	}
	return nil
}

func (m *MockWalletRepository) FindByUserID(ctx context.Context, userID uint) (*domain.CoinWallet, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) DebitForContact(ctx context.Context, buyerID, sellerID uint, amount int64, description string) (string, error) {
	if m.DebitForContactFunc != nil {
		return m.DebitForContactFunc(ctx, buyerID, sellerID, amount, description)
	}
	return "", domain.ErrWalletNotFound
}

func (m *MockWalletRepository) Transactions(ctx context.Context, userID uint) ([]domain.Transaction, error) {
	if m.TransactionsFunc != nil {
		return m.TransactionsFunc(ctx, userID)
	}
	return []domain.Transaction{}, nil
}
