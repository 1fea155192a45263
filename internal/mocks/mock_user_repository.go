package mocks

import (
	"context"
	"time"

	"github.com/working2003/breedingo/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc       func(ctx context.Context, user *domain.User) error
	FindByMobileFunc func(ctx context.Context, mobile string) (*domain.User, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.User, error)
	ApplyProfileFunc func(ctx context.Context, userID uint, patch *domain.ProfileUpdate) (*domain.User, error)
	TouchLoginFunc   func(ctx context.Context, userID uint, at time.Time) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success with an assigned id
	user.ID = 1
	return nil
}

func (m *MockUserRepository) FindByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	if m.FindByMobileFunc != nil {
		return m.FindByMobileFunc(ctx, mobile)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) ApplyProfile(ctx context.Context, userID uint, patch *domain.ProfileUpdate) (*domain.User, error) {
	if m.ApplyProfileFunc != nil {
		return m.ApplyProfileFunc(ctx, userID, patch)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) TouchLogin(ctx context.Context, userID uint, at time.Time) error {
	if m.TouchLoginFunc != nil {
		return m.TouchLoginFunc(ctx, userID, at)
	}
	return nil
}
