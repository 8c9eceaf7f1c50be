package handlers

import (
	"net/http"

	"auditpeer/internal/models"
	"auditpeer/internal/store"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	store *store.Store
}

func NewVoteHandler(st *store.Store) *VoteHandler {
	return &VoteHandler{store: st}
}

// Cast applies the viewer's vote to a question or answer. Clicking the same
// direction twice retracts; the response carries the new count and the
// viewer's new direction, which the store wrote atomically.
func (h *VoteHandler) Cast(c *gin.Context) {
	var kind models.TargetType
	switch c.Param("kind") {
	case "question":
		kind = models.TargetQuestion
	case "answer":
		kind = models.TargetAnswer
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be question or answer"})
		return
	}

	var in struct {
		Value int `json:"value"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if in.Value != 1 && in.Value != -1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be 1 or -1"})
		return
	}

	userVote, count, ok := h.store.CastVote(viewerID(c), kind, c.Param("id"), in.Value)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "target not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vote_count": count,
		"user_vote":  userVote,
	})
}
