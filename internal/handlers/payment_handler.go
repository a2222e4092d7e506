package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// GetPaymentsByMember handles GET /payments/member/:id
func (h *PaymentHandler) GetPaymentsByMember(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	payments, err := h.paymentService.GetPaymentsByMember(c, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetAllPayments handles GET /payments
func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	payments, err := h.paymentService.GetPayments(c, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.paymentService.RecordPayment(c, &payment); err != nil {
		if errors.Is(err, services.ErrInvalidPayment) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, payment)
}
