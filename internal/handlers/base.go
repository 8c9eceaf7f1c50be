package handlers

import (
	"fmt"
	"html/template"
	"time"

	"auditpeer/internal/middleware"
	"auditpeer/internal/models"
	"auditpeer/internal/utils"

	"github.com/gin-gonic/gin"
)

func viewerID(c *gin.Context) string {
	return c.GetString(middleware.ViewerKey)
}

func currentProfile(c *gin.Context) *models.Profile {
	if v, exists := c.Get(middleware.ProfileKey); exists {
		if p, ok := v.(*models.Profile); ok {
			return p
		}
	}
	return nil
}

// renderBody returns the sanitized HTML for a stored markdown body, cached
// per entity revision. The key embeds UpdatedAt so edits miss naturally and
// stale entries age out of the LRU on their own.
func renderBody(kind, id string, updatedAt time.Time, source string) template.HTML {
	key := fmt.Sprintf("md:%s:%s:%d", kind, id, updatedAt.UnixNano())
	if cached := utils.GetCache().Get(key); cached != nil {
		if h, ok := cached.(template.HTML); ok {
			return h
		}
	}
	h := utils.RenderMarkdown(source)
	utils.GetCache().Set(key, h, time.Hour)
	return h
}
