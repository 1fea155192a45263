package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/working2003/breedingo/domain"
	"github.com/working2003/breedingo/internal/http/middleware"
)

// UserHandlers handles profile and coin endpoints
type UserHandlers struct {
	userSvc   domain.UserService
	walletSvc domain.WalletService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService, walletSvc domain.WalletService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc, walletSvc: walletSvc}
}

// GetContactRequest represents the contact unlock body
type GetContactRequest struct {
	SellerID uint `json:"sellerId" binding:"required"`
}

// Me handles GET /user
func (h *UserHandlers) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	user, totalCoin, err := h.userSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "totalCoin": totalCoin})
}

// Register handles POST /user/register
func (h *UserHandlers) Register(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	var patch domain.ProfileUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if err := h.userSvc.Register(c.Request.Context(), userID, &patch); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		case errors.Is(err, domain.ErrAlreadyRegistered):
			c.JSON(http.StatusForbidden, gin.H{"msg": "User not found or Already Present"})
		default:
			log.Printf("REGISTER_FAILED: user_id=%d error=%v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User created successfully"})
}

// Update handles PUT /user/update
func (h *UserHandlers) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	var patch domain.ProfileUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if _, err := h.userSvc.UpdateProfile(c.Request.Context(), userID, &patch); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User data updated successfully"})
}

// Transactions handles GET /user/transactions
func (h *UserHandlers) Transactions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	totalCoin, err := h.walletSvc.Balance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load transactions"})
		return
	}

	transactions, err := h.walletSvc.Transactions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalCoin": totalCoin, "transactions": transactions})
}

// GetContact handles POST /user/getContact
func (h *UserHandlers) GetContact(c *gin.Context) {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	var req GetContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "sellerId is required"})
		return
	}

	sellerMobile, err := h.walletSvc.UnlockContact(c.Request.Context(), buyerID, req.SellerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrWalletNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		case errors.Is(err, domain.ErrInsufficientBalance):
			c.JSON(http.StatusNotFound, gin.H{"msg": "insufficient balance"})
		default:
			log.Printf("CONTACT_UNLOCK_FAILED: buyer_id=%d seller_id=%d error=%v", buyerID, req.SellerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to unlock contact"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User coin updated successfully", "userMobile": sellerMobile})
}
