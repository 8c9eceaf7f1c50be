package handlers

import (
	"net/http"
	"strings"

	"auditpeer/internal/models"
	"auditpeer/internal/services"
	"auditpeer/internal/store"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	store *store.Store
}

func NewTemplateHandler(st *store.Store) *TemplateHandler {
	return &TemplateHandler{store: st}
}

// List filters templates by category and orders them most-downloaded first.
func (h *TemplateHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", models.TemplateCategoryAll)
	if category != models.TemplateCategoryAll && !models.IsTemplateCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	templates := services.FilterTemplates(h.store.Templates(), category)
	services.SortTemplatesByDownloads(templates)

	c.JSON(http.StatusOK, gin.H{
		"category":  category,
		"templates": templates,
		"total":     len(templates),
	})
}

// Create shares a template. Submission is gated on required fields, the fixed
// category/format vocabularies, and the explicit sanitization acknowledgment.
func (h *TemplateHandler) Create(c *gin.Context) {
	var in store.TemplateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	switch {
	case strings.TrimSpace(in.Title) == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	case strings.TrimSpace(in.Description) == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	case !models.IsTemplateCategory(in.Category):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	case !models.IsTemplateFormat(in.FileFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "file format must be one of xlsx, docx, pdf, zip"})
		return
	case in.FileName == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "a file is required"})
		return
	case len(in.Tags) == 0 || len(in.Tags) > maxTags:
		c.JSON(http.StatusBadRequest, gin.H{"error": "between 1 and 5 tags"})
		return
	case !in.Sanitized:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sanitization must be acknowledged before sharing"})
		return
	}

	t := h.store.CreateTemplate(currentProfile(c), in)
	c.JSON(http.StatusCreated, t)
}

// Download bumps a template's download counter.
func (h *TemplateHandler) Download(c *gin.Context) {
	count, ok := h.store.DownloadTemplate(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"download_count": count})
}
