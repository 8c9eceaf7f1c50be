package handlers

import (
	"net/http"
	"time"

	"auditpeer/internal/store"
	"auditpeer/internal/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	store *store.Store
}

func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// Stats returns the sidebar aggregates, cached briefly since they scan the
// full collections.
func (h *StatsHandler) Stats(c *gin.Context) {
	const cacheKey = "stats:sidebar"
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if data, ok := cached.(gin.H); ok {
			c.JSON(http.StatusOK, data)
			return
		}
	}

	data := gin.H{
		"community": h.store.CommunityStats(),
		"templates": h.store.TemplateStats(),
	}
	utils.GetCache().Set(cacheKey, data, 30*time.Second)
	c.JSON(http.StatusOK, data)
}
