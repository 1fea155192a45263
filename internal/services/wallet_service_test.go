package services

import (
	"context"
	"errors"
	"testing"

	"github.com/working2003/breedingo/domain"
	"github.com/working2003/breedingo/internal/mocks"
)

// fakeLedger emulates the repository's conditional-debit contract in memory.
type fakeLedger struct {
	balances     map[uint]int64
	sellerMobile map[uint]string
	transactions []domain.Transaction
}

func (l *fakeLedger) debitForContact(buyerID, sellerID uint, amount int64, description string) (string, error) {
	balance, ok := l.balances[buyerID]
	if !ok {
		return "", domain.ErrWalletNotFound
	}
	if balance < amount {
		return "", domain.ErrInsufficientBalance
	}
	mobile, ok := l.sellerMobile[sellerID]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	l.balances[buyerID] = balance - amount
	l.transactions = append(l.transactions, domain.Transaction{
		UserID:      buyerID,
		Description: description,
		Amount:      amount,
		Type:        domain.TxnDebited,
	})
	return mobile, nil
}

func newWalletServiceForTest(t *testing.T, viewPrice int64, ledger *fakeLedger) domain.WalletService {
	t.Helper()

	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		if _, ok := ledger.balances[id]; ok {
			return &domain.User{ID: id, Status: domain.StatusActive}, nil
		}
		return nil, domain.ErrUserNotFound
	}

	walletRepo := mocks.NewMockWalletRepository()
	walletRepo.FindByUserIDFunc = func(ctx context.Context, userID uint) (*domain.CoinWallet, error) {
		balance, ok := ledger.balances[userID]
		if !ok {
			return nil, domain.ErrWalletNotFound
		}
		return &domain.CoinWallet{UserID: userID, TotalCoin: balance}, nil
	}
	walletRepo.DebitForContactFunc = func(ctx context.Context, buyerID, sellerID uint, amount int64, description string) (string, error) {
		return ledger.debitForContact(buyerID, sellerID, amount, description)
	}
	walletRepo.TransactionsFunc = func(ctx context.Context, userID uint) ([]domain.Transaction, error) {
		out := []domain.Transaction{}
		for _, txn := range ledger.transactions {
			if txn.UserID == userID {
				out = append(out, txn)
			}
		}
		return out, nil
	}

	return NewWalletService(userRepo, walletRepo, viewPrice)
}

// Buyer with balance 50 and price 20 unlocks seller 9998887776: balance 30,
// exactly one debited transaction of 20.
func TestWalletService_UnlockContact(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeLedger{
		balances:     map[uint]int64{1: 50},
		sellerMobile: map[uint]string{2: "9998887776"},
	}
	svc := newWalletServiceForTest(t, 20, ledger)

	mobile, err := svc.UnlockContact(ctx, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mobile != "9998887776" {
		t.Errorf("expected seller mobile 9998887776, got %s", mobile)
	}
	if ledger.balances[1] != 30 {
		t.Errorf("expected balance 30, got %d", ledger.balances[1])
	}
	if len(ledger.transactions) != 1 {
		t.Fatalf("expected exactly one transaction, got %d", len(ledger.transactions))
	}
	txn := ledger.transactions[0]
	if txn.Type != domain.TxnDebited || txn.Amount != 20 || txn.UserID != 1 {
		t.Errorf("unexpected transaction %+v", txn)
	}
}

func TestWalletService_UnlockContact_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeLedger{
		balances:     map[uint]int64{1: 10},
		sellerMobile: map[uint]string{2: "9998887776"},
	}
	svc := newWalletServiceForTest(t, 20, ledger)

	if _, err := svc.UnlockContact(ctx, 1, 2); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if ledger.balances[1] != 10 {
		t.Errorf("balance must be unchanged on rejection, got %d", ledger.balances[1])
	}
	if len(ledger.transactions) != 0 {
		t.Errorf("no transaction may be logged on rejection, got %d", len(ledger.transactions))
	}
}

func TestWalletService_UnlockContact_BuyerNotFound(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeLedger{
		balances:     map[uint]int64{},
		sellerMobile: map[uint]string{2: "9998887776"},
	}
	svc := newWalletServiceForTest(t, 20, ledger)

	if _, err := svc.UnlockContact(ctx, 99, 2); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestWalletService_BalanceAndTransactions(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeLedger{
		balances:     map[uint]int64{1: 50},
		sellerMobile: map[uint]string{2: "9998887776"},
	}
	svc := newWalletServiceForTest(t, 20, ledger)

	if _, err := svc.UnlockContact(ctx, 1, 2); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	balance, err := svc.Balance(ctx, 1)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 30 {
		t.Errorf("expected balance 30, got %d", balance)
	}

	transactions, err := svc.Transactions(ctx, 1)
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(transactions) != 1 || transactions[0].Type != domain.TxnDebited {
		t.Errorf("expected one debited entry, got %+v", transactions)
	}
}

func TestWalletService_UnlockContact_ExactBalance(t *testing.T) {
	ctx := context.Background()
	ledger := &fakeLedger{
		balances:     map[uint]int64{1: 20},
		sellerMobile: map[uint]string{2: "9998887776"},
	}
	svc := newWalletServiceForTest(t, 20, ledger)

	if _, err := svc.UnlockContact(ctx, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ledger.balances[1] != 0 {
		t.Errorf("expected balance 0, got %d", ledger.balances[1])
	}
}
