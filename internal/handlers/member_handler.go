package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oscahub/osca-backend/internal/middleware"
	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemberHandler handles member-related HTTP requests
type MemberHandler struct {
	memberService services.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// GetMemberByID handles GET /members/:id
func (h *MemberHandler) GetMemberByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	member, err := h.memberService.GetMember(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetMemberByNo handles GET /members/no/:memberNo
func (h *MemberHandler) GetMemberByNo(c *gin.Context) {
	member, err := h.memberService.GetMemberByNo(c, c.Param("memberNo"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetAllMembers handles GET /members
func (h *MemberHandler) GetAllMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	members, err := h.memberService.GetMembers(c, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get members: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// CreateMember handles POST /members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req struct {
		models.Member
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := req.Member
	if err := h.memberService.CreateMember(c, &member, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member: " + err.Error()})
		return
	}

	member.Password = ""
	c.JSON(http.StatusCreated, member)
}

// UpdateProfile handles PUT /members/:id/profile. The caller's session is
// passed explicitly into the save so the password side-channel can verify it
// against the record.
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := middleware.SessionFromContext(c)
	if err := h.memberService.UpdateProfile(c, session, id, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile saved"})
}

// UploadPhoto handles POST /members/:id/photo
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read photo: " + err.Error()})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read photo: " + err.Error()})
		return
	}

	url, err := h.memberService.UploadPhoto(c, id, fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}

// GetIDCard handles GET /members/:id/card
func (h *MemberHandler) GetIDCard(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	card, err := h.memberService.GetIDCard(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, card)
}
