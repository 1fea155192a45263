package domain

import "errors"

// Input validation errors
var (
	ErrInvalidMobile = errors.New("mobile number must be exactly 10 digits")
	ErrMissingField  = errors.New("required field missing")
)

// OTP errors
var (
	ErrNoChallenge    = errors.New("no pending otp challenge")
	ErrOTPInvalid     = errors.New("invalid otp code")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
)

// Token errors
var (
	ErrTokenMissing   = errors.New("authorization token missing")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// User and wallet errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAlreadyRegistered   = errors.New("user already registered")
	ErrWalletNotFound      = errors.New("coin wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Listing errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrSaveNotFound    = errors.New("saved listing not found")
	ErrTooManyImages   = errors.New("at most 2 images allowed")
	ErrNotAnImage      = errors.New("file must be an image")
)

// Provider errors
var (
	ErrProviderConfig = errors.New("otp provider credentials not configured")
	ErrProviderSend   = errors.New("otp provider request failed")
)
