package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/working2003/breedingo/domain"
)

// WalletRepositoryImpl implements domain.WalletRepository using GORM
type WalletRepositoryImpl struct {
	db *gorm.DB
}

// DBCoinWallet represents the database model for a coin balance
type DBCoinWallet struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex;not null"`
	TotalCoin int64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBCoinWallet) TableName() string {
	return "user_coins"
}

// DBTransaction represents one append-only coin ledger entry
type DBTransaction struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Description string `gorm:"size:255"`
	Amount      int64  `gorm:"not null"`
	Type        string `gorm:"size:16;not null"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBTransaction) TableName() string {
	return "user_transactions"
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) domain.WalletRepository {
	return &WalletRepositoryImpl{db: db}
}

// CreateWallet implements domain.WalletRepository. The opening balance is
// recorded as a credited ledger entry.
func (r *WalletRepositoryImpl) CreateWallet(ctx context.Context, userID uint, openingBalance int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&DBCoinWallet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyRegistered
		}

		wallet := &DBCoinWallet{UserID: userID, TotalCoin: openingBalance}
		if err := tx.Create(wallet).Error; err != nil {
			return err
		}

		if openingBalance > 0 {
			entry := &DBTransaction{
				UserID:      userID,
				Description: "Signup bonus",
				Amount:      openingBalance,
				Type:        domain.TxnCredited,
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByUserID implements domain.WalletRepository
func (r *WalletRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.CoinWallet, error) {
	var wallet DBCoinWallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	return &domain.CoinWallet{UserID: wallet.UserID, TotalCoin: wallet.TotalCoin}, nil
}

// DebitForContact implements domain.WalletRepository. The debit is a
// conditional update so the balance can never go negative, and the ledger
// append plus the seller lookup share the same transaction: if anything
// after the debit fails, the debit rolls back.
func (r *WalletRepositoryImpl) DebitForContact(ctx context.Context, buyerID, sellerID uint, amount int64, description string) (string, error) {
	var sellerMobile string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBCoinWallet{}).
			Where("user_id = ? AND total_coin >= ?", buyerID, amount).
			Update("total_coin", gorm.Expr("total_coin - ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either no wallet or not enough coins; distinguish for the caller.
			var count int64
			if err := tx.Model(&DBCoinWallet{}).Where("user_id = ?", buyerID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrWalletNotFound
			}
			return domain.ErrInsufficientBalance
		}

		entry := &DBTransaction{
			UserID:      buyerID,
			Description: description,
			Amount:      amount,
			Type:        domain.TxnDebited,
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to append transaction: %w", err)
		}

		var seller DBUser
		if err := tx.Where("id = ?", sellerID).First(&seller).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return domain.ErrUserNotFound
			}
			return err
		}
		sellerMobile = seller.MobileNumber
		return nil
	})
	if err != nil {
		return "", err
	}

	return sellerMobile, nil
}

// Transactions implements domain.WalletRepository
func (r *WalletRepositoryImpl) Transactions(ctx context.Context, userID uint) ([]domain.Transaction, error) {
	var rows []DBTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Transaction{
			ID:          row.ID,
			UserID:      row.UserID,
			Description: row.Description,
			Amount:      row.Amount,
			Type:        row.Type,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}
