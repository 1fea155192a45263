package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/working2003/breedingo/domain"
)

// AuthHandlers handles the OTP login endpoints
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// LoginRequest represents the OTP request body
type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

// VerifyRequest represents the OTP verification body. The mobile client
// historically sent the number as "mobile"; both names are accepted.
type VerifyRequest struct {
	MobileNumber string `json:"mobileNumber"`
	Mobile       string `json:"mobile"`
	OTP          string `json:"otp" binding:"required"`
}

func (r *VerifyRequest) mobile() string {
	if r.MobileNumber != "" {
		return r.MobileNumber
	}
	return r.Mobile
}

// Login handles POST /login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "mobileNumber is required"})
		return
	}

	orderID, err := h.authSvc.RequestOTP(c.Request.Context(), req.MobileNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMobile):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid mobile number"})
		default:
			log.Printf("OTP_SEND_FAILED: mobile=%s error=%v", req.MobileNumber, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent successfully",
		"orderId": orderID,
	})
}

// Verify handles POST /login/verify
func (h *AuthHandlers) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.mobile() == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "mobileNumber and otp are required"})
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.mobile(), req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMobile):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid mobile number"})
		case errors.Is(err, domain.ErrNoChallenge):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No pending OTP for this number"})
		case errors.Is(err, domain.ErrOTPMaxAttempts):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Maximum OTP attempts exceeded"})
		case errors.Is(err, domain.ErrOTPInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP"})
		default:
			log.Printf("OTP_VERIFY_FAILED: mobile=%s error=%v", req.mobile(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "OTP verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      result.Token,
		"expiresIn":  result.ExpiresIn,
		"userStatus": result.User.Status,
		"user":       result.User,
	})
}
