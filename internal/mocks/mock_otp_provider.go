package mocks

import (
	"context"
)

// MockOTPProvider implements domain.OTPProvider for testing
type MockOTPProvider struct {
	SendFunc  func(ctx context.Context, mobile string) (string, error)
	CheckFunc func(ctx context.Context, mobile, code string) (bool, error)

	SendCalls  int
	CheckCalls int
}

// NewMockOTPProvider creates a new MockOTPProvider with default behaviors
func NewMockOTPProvider() *MockOTPProvider {
	return &MockOTPProvider{}
}

func (m *MockOTPProvider) Send(ctx context.Context, mobile string) (string, error) {
	m.SendCalls++
	if m.SendFunc != nil {
		return m.SendFunc(ctx, mobile)
	}
	return "VE_mock_order", nil
}

func (m *MockOTPProvider) Check(ctx context.Context, mobile, code string) (bool, error) {
	m.CheckCalls++
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, mobile, code)
	}
	return false, nil
}
