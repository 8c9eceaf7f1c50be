package handlers

import (
	"net/http"

	"auditpeer/internal/middleware"
	"auditpeer/internal/store"
	"auditpeer/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	store *store.Store
}

func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

// Show returns the session's active profile.
func (h *ProfileHandler) Show(c *gin.Context) {
	p := currentProfile(c)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile for this session"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Save creates the session's profile on first save and edits it in place
// afterwards. A blank username gets a generated pseudonym.
func (h *ProfileHandler) Save(c *gin.Context) {
	var in store.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	existingID := ""
	if p := currentProfile(c); p != nil {
		existingID = p.ID
	}

	p := h.store.SaveProfile(existingID, in)
	if err := middleware.BindProfile(c, p.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Meta returns the fixed vocabularies the profile and share forms offer.
func (h *ProfileHandler) Meta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"industries":        utils.Industries,
		"certifications":    utils.Certifications,
		"experience_ranges": utils.ExperienceRanges,
		"tags":              utils.Tags,
		"avatar_gradients":  utils.AvatarGradients,
	})
}
