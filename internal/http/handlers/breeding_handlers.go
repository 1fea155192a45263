package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/working2003/breedingo/domain"
	"github.com/working2003/breedingo/internal/http/middleware"
)

// BreedingHandlers handles the pregEasy endpoints
type BreedingHandlers struct {
	breedingRepo domain.BreedingRepository
}

// NewBreedingHandlers creates new breeding record handlers
func NewBreedingHandlers(breedingRepo domain.BreedingRepository) *BreedingHandlers {
	return &BreedingHandlers{breedingRepo: breedingRepo}
}

// Add handles POST /pregEasy/add
func (h *BreedingHandlers) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	var record domain.BreedingRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}
	record.UserID = userID

	if err := h.breedingRepo.Create(c.Request.Context(), &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to add record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "pregEasy record added successfully", "pregEasyId": record.ID})
}

// GetAll handles GET /pregEasy/getAll
func (h *BreedingHandlers) GetAll(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	records, err := h.breedingRepo.FindByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load records"})
		return
	}

	c.JSON(http.StatusOK, records)
}
