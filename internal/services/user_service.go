package services

import (
	"context"
	"errors"

	"github.com/working2003/breedingo/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	walletRepo  domain.WalletRepository
	signupBonus int64
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository, walletRepo domain.WalletRepository, signupBonus int64) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		walletRepo:  walletRepo,
		signupBonus: signupBonus,
	}
}

// Profile implements domain.UserService. Returns the profile together with
// the wallet balance; a missing wallet reads as zero (registration not yet
// completed).
func (s *UserServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, int64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrWalletNotFound {
			return user, 0, nil
		}
		return nil, 0, err
	}

	return user, wallet.TotalCoin, nil
}

// Register implements domain.UserService. Completes a freshly verified
// account: applies the submitted profile fields and opens the coin wallet
// with the signup bonus. The wallet check runs first so a repeated
// registration is rejected without overwriting the finalized profile;
// CreateWallet still guards the race between two concurrent first attempts.
func (s *UserServiceImpl) Register(ctx context.Context, userID uint, patch *domain.ProfileUpdate) error {
	_, err := s.walletRepo.FindByUserID(ctx, userID)
	if err == nil {
		return domain.ErrAlreadyRegistered
	}
	if !errors.Is(err, domain.ErrWalletNotFound) {
		return err
	}

	if _, err := s.userRepo.ApplyProfile(ctx, userID, patch); err != nil {
		return err
	}
	return s.walletRepo.CreateWallet(ctx, userID, s.signupBonus)
}

// UpdateProfile implements domain.UserService
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint, patch *domain.ProfileUpdate) (*domain.User, error) {
	return s.userRepo.ApplyProfile(ctx, userID, patch)
}
