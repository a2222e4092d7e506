package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oscahub/osca-backend/internal/middleware"
	"github.com/oscahub/osca-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AvailmentHandler handles benefit request HTTP requests
type AvailmentHandler struct {
	availmentService services.AvailmentService
}

// NewAvailmentHandler creates a new AvailmentHandler
func NewAvailmentHandler(availmentService services.AvailmentService) *AvailmentHandler {
	return &AvailmentHandler{availmentService: availmentService}
}

// Submit handles POST /availments. The request is a multipart form carrying
// the chosen benefit, optional notes, and the attached documents; the
// requester is the authenticated session account.
func (h *AvailmentHandler) Submit(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var benefitID primitive.ObjectID
	if v := c.PostForm("benefitId"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid benefit ID format"})
			return
		}
		benefitID = id
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form: " + err.Error()})
		return
	}

	var files []services.SubmitFile
	for _, fh := range form.File["documents"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment: " + err.Error()})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment: " + err.Error()})
			return
		}
		files = append(files, services.SubmitFile{
			Name: fh.Filename,
			Type: fh.Header.Get("Content-Type"),
			Data: data,
		})
	}

	availment, err := h.availmentService.SubmitRequest(c, &services.SubmitRequest{
		MemberID:  session.AccountID,
		BenefitID: benefitID,
		Notes:     c.PostForm("notes"),
		Files:     files,
	})
	if err != nil {
		var ineligible *services.ErrIneligible
		switch {
		case errors.Is(err, services.ErrNoBenefitSelected), errors.Is(err, services.ErrNoDocuments):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &ineligible):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, availment)
}

// GetByMember handles GET /availments/member/:id
func (h *AvailmentHandler) GetByMember(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	availments, err := h.availmentService.GetByMember(c, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get availments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, availments)
}

// GetEligibility handles GET /availments/member/:id/eligibility/:benefitId
func (h *AvailmentHandler) GetEligibility(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID format"})
		return
	}
	benefitID, err := primitive.ObjectIDFromHex(c.Param("benefitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid benefit ID format"})
		return
	}

	verdict, err := h.availmentService.GetEligibility(c, memberID, benefitID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Benefit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check eligibility: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, verdict)
}

// GetStats handles GET /availments/member/:id/stats
func (h *AvailmentHandler) GetStats(c *gin.Context) {
	memberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	stats, err := h.availmentService.GetStats(c, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetByID handles GET /availments/:id
func (h *AvailmentHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	availment, err := h.availmentService.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Availment not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, availment)
}

// GetAll handles GET /availments
func (h *AvailmentHandler) GetAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	availments, err := h.availmentService.GetAll(c, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get availments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, availments)
}

// Approve handles POST /availments/:id/approve
func (h *AvailmentHandler) Approve(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	availment, err := h.availmentService.Approve(c, id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Availment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, availment)
}

// Reject handles POST /availments/:id/reject
func (h *AvailmentHandler) Reject(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	availment, err := h.availmentService.Reject(c, id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoRejectionReason):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Availment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, availment)
}
