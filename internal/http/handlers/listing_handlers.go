package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/working2003/breedingo/domain"
	"github.com/working2003/breedingo/internal/http/middleware"
)

const maxImageSize = 5 << 20 // 5 MB per file, as the mobile app enforces

// ListingHandlers handles the cattle sell endpoints
type ListingHandlers struct {
	listingSvc domain.ListingService
}

// NewListingHandlers creates new listing handlers
func NewListingHandlers(listingSvc domain.ListingService) *ListingHandlers {
	return &ListingHandlers{listingSvc: listingSvc}
}

// SaveRequest represents the bookmark body
type SaveRequest struct {
	CattleSellID uint `json:"cattleSellId" binding:"required"`
}

// List handles GET /cattle/sell with page/limit query params
func (h *ListingHandlers) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.listingSvc.Page(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cattleForSell": result.Listings,
		"currentPage":   result.CurrentPage,
		"totalRecord":   result.TotalRecord,
		"totalPages":    result.TotalPages,
	})
}

// Get handles GET /cattle/sell/:id
func (h *ListingHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid listing id"})
		return
	}

	listing, err := h.listingSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Cattle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load listing"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Create handles POST /cattle/sell (multipart, up to 2 images)
func (h *ListingHandlers) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	listing := listingFromForm(c)
	if listing.Type == "" || listing.CattleBreed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "type and cattleBreed are required"})
		return
	}
	listing.UserID = userID

	images, err := imagesFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	if err := h.listingSvc.Create(c.Request.Context(), listing, images); err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyImages), errors.Is(err, domain.ErrNotAnImage):
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		default:
			log.Printf("LISTING_CREATE_FAILED: user_id=%d error=%v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to add cattle"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "cattleSell added successfully"})
}

// Delete handles DELETE /cattle/sell/:cattleId
func (h *ListingHandlers) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	id, err := strconv.ParseUint(c.Param("cattleId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid listing id"})
		return
	}

	if err := h.listingSvc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cattle not found or already deleted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to delete cattle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cattle successfully deleted"})
}

// Mine handles GET /user/cattle/sell
func (h *ListingHandlers) Mine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	listings, err := h.listingSvc.OwnedBy(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// Saved handles GET /cattle/sell/save
func (h *ListingHandlers) Saved(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	listings, err := h.listingSvc.SavedListings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to load saved listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// Save handles POST /cattle/sell/save
func (h *ListingHandlers) Save(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "cattleSellId is required"})
		return
	}

	if err := h.listingSvc.SaveListing(c.Request.Context(), userID, req.CattleSellID); err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Cattle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to save cattle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "cattleSell saved successfully"})
}

// Unsave handles DELETE /cattle/sell/save/:cattleSellId
func (h *ListingHandlers) Unsave(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User ID not found in context"})
		return
	}

	id, err := strconv.ParseUint(c.Param("cattleSellId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid listing id"})
		return
	}

	if err := h.listingSvc.Unsave(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, domain.ErrSaveNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to delete record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Record deleted successfully"})
}

// listingFromForm reads the multipart form fields into a listing
func listingFromForm(c *gin.Context) *domain.CattleListing {
	formInt := func(name string) int {
		v, _ := strconv.Atoi(c.PostForm(name))
		return v
	}
	formFloat := func(name string) float64 {
		v, _ := strconv.ParseFloat(c.PostForm(name), 64)
		return v
	}
	formDefault := func(name, def string) string {
		if v := c.PostForm(name); v != "" {
			return v
		}
		return def
	}

	return &domain.CattleListing{
		Type:                       c.PostForm("type"),
		CattleBreed:                c.PostForm("cattleBreed"),
		DateOfDelivery:             c.PostForm("dateOfDelivery"),
		DateOfBirth:                c.PostForm("dateOfBirth"),
		NumberOfLactation:          formInt("numberOfLactation"),
		DailyMilkProduction:        formFloat("dailyMilkProduction"),
		EstimatedDailyMilkCapacity: formFloat("estimatedDailyMilkCapacity"),
		IsPregnant:                 formDefault("isPregnant", "No"),
		UsedSemen:                  c.PostForm("usedSemen"),
		IsDeworming:                formDefault("isDeworming", "No"),
		IsVaccination:              formDefault("isVaccination", "No"),
		IsHorn:                     formDefault("isHorn", "No"),
		Weight:                     formFloat("weight"),
		Price:                      formFloat("price"),
		NoOfCalving:                c.PostForm("noOfCalving"),
		TagNumber:                  c.PostForm("tagNumber"),
		DateOfInsemination:         c.PostForm("dateOfInsemination"),
	}
}

// imagesFromForm reads up to the allowed number of uploaded images into memory
func imagesFromForm(c *gin.Context) ([]domain.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all is allowed; images are optional.
		return nil, nil
	}

	files := form.File["images"]
	uploads := make([]domain.ImageUpload, 0, len(files))
	for _, file := range files {
		if file.Size > maxImageSize {
			return nil, errors.New("image exceeds 5MB limit")
		}
		data, err := readUpload(file)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, domain.ImageUpload{
			FileName:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
