package services

import (
	"context"
	"fmt"
	"log"

	"github.com/working2003/breedingo/domain"
)

// WalletServiceImpl implements domain.WalletService
type WalletServiceImpl struct {
	userRepo   domain.UserRepository
	walletRepo domain.WalletRepository
	viewPrice  int64
}

// NewWalletService creates a new wallet service
func NewWalletService(userRepo domain.UserRepository, walletRepo domain.WalletRepository, viewPrice int64) domain.WalletService {
	return &WalletServiceImpl{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		viewPrice:  viewPrice,
	}
}

// Balance implements domain.WalletService
func (s *WalletServiceImpl) Balance(ctx context.Context, userID uint) (int64, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.TotalCoin, nil
}

// Transactions implements domain.WalletService
func (s *WalletServiceImpl) Transactions(ctx context.Context, userID uint) ([]domain.Transaction, error) {
	return s.walletRepo.Transactions(ctx, userID)
}

// UnlockContact implements domain.WalletService. Charges the buyer the view
// price and returns the seller's mobile number. The repository performs the
// debit, the ledger append and the seller lookup in one transaction, so a
// failed lookup never leaves a dangling debit.
func (s *WalletServiceImpl) UnlockContact(ctx context.Context, buyerID, sellerID uint) (string, error) {
	if _, err := s.userRepo.FindByID(ctx, buyerID); err != nil {
		return "", err
	}

	description := fmt.Sprintf("Viewed seller %d's contact.", sellerID)
	sellerMobile, err := s.walletRepo.DebitForContact(ctx, buyerID, sellerID, s.viewPrice, description)
	if err != nil {
		return "", err
	}

	log.Printf("CONTACT_UNLOCKED: buyer_id=%d seller_id=%d price=%d", buyerID, sellerID, s.viewPrice)
	return sellerMobile, nil
}
