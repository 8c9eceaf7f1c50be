package handlers

import (
	"net/http"

	"auditpeer/internal/store"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	store *store.Store
}

func NewBookmarkHandler(st *store.Store) *BookmarkHandler {
	return &BookmarkHandler{store: st}
}

// Toggle flips the viewer's bookmark on a question.
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	id := c.Param("id")

	bookmarked, ok := h.store.ToggleBookmark(viewerID(c), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookmarked": bookmarked,
		"count":      h.store.BookmarkCount(id),
	})
}
