package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BenefitHandler handles benefit catalogue HTTP requests
type BenefitHandler struct {
	benefitService services.BenefitService
}

// NewBenefitHandler creates a new BenefitHandler
func NewBenefitHandler(benefitService services.BenefitService) *BenefitHandler {
	return &BenefitHandler{benefitService: benefitService}
}

// GetBenefitByID handles GET /benefits/:id
func (h *BenefitHandler) GetBenefitByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	benefit, err := h.benefitService.GetBenefit(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Benefit not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, benefit)
}

// GetAllBenefits handles GET /benefits
func (h *BenefitHandler) GetAllBenefits(c *gin.Context) {
	benefits, err := h.benefitService.GetBenefits(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get benefits: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, benefits)
}

// CreateBenefit handles POST /benefits
func (h *BenefitHandler) CreateBenefit(c *gin.Context) {
	var benefit models.Benefit
	if err := c.ShouldBindJSON(&benefit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.benefitService.CreateBenefit(c, &benefit); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create benefit: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, benefit)
}

// UpdateBenefit handles PUT /benefits/:id
func (h *BenefitHandler) UpdateBenefit(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var benefit models.Benefit
	if err := c.ShouldBindJSON(&benefit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	benefit.ID = id

	if err := h.benefitService.UpdateBenefit(c, &benefit); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update benefit: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, benefit)
}

// DeleteBenefit handles DELETE /benefits/:id
func (h *BenefitHandler) DeleteBenefit(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.benefitService.DeleteBenefit(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete benefit: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Benefit deleted"})
}
