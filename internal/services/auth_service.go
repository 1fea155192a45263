package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/working2003/breedingo/domain"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo domain.UserRepository
	otpSvc   domain.OTPService
	tokenSvc domain.TokenService
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	otpSvc domain.OTPService,
	tokenSvc domain.TokenService,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		otpSvc:   otpSvc,
		tokenSvc: tokenSvc,
		tokenTTL: tokenTTL,
	}
}

// RequestOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, mobile string) (string, error) {
	if !mobilePattern.MatchString(mobile) {
		return "", domain.ErrInvalidMobile
	}

	orderID, err := s.otpSvc.Begin(ctx, mobile)
	if err != nil {
		return "", err
	}

	log.Printf("OTP_SENT: mobile=%s order_id=%s", mobile, orderID)
	return orderID, nil
}

// VerifyOTP implements domain.AuthService. On a correct code the user is
// upserted by mobile number and a session token is minted.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, mobile, code string) (*domain.AuthResult, error) {
	if !mobilePattern.MatchString(mobile) {
		return nil, domain.ErrInvalidMobile
	}

	if err := s.otpSvc.Verify(ctx, mobile, code); err != nil {
		return nil, err
	}

	now := time.Now()
	user, err := s.userRepo.FindByMobile(ctx, mobile)
	switch err {
	case nil:
		if err := s.userRepo.TouchLogin(ctx, user.ID, now); err != nil {
			return nil, fmt.Errorf("failed to record login: %w", err)
		}
		user.LastLogIn = &now
		user.Status = domain.StatusActive
	case domain.ErrUserNotFound:
		user = &domain.User{
			MobileNumber: mobile,
			Status:       domain.StatusActive,
			LastLogIn:    &now,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	default:
		return nil, err
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("LOGIN_OK: user_id=%d mobile=%s timestamp=%s",
		user.ID, mobile, now.UTC().Format(time.RFC3339))

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}
