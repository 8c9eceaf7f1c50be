package handlers

import (
	"net/http"
	"strings"

	"auditpeer/internal/store"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	store *store.Store
}

func NewAnswerHandler(st *store.Store) *AnswerHandler {
	return &AnswerHandler{store: st}
}

type answerInput struct {
	Body string `json:"body"`
}

// Create posts an answer to a question and bumps its answer count.
func (h *AnswerHandler) Create(c *gin.Context) {
	questionID := c.Param("id")

	var in answerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(in.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is required"})
		return
	}

	a, ok := h.store.CreateAnswer(currentProfile(c), questionID, in.Body)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Accept designates the accepted answer for a question. Only the question's
// author may accept; the engine itself trusts its caller, so the check lives
// here.
func (h *AnswerHandler) Accept(c *gin.Context) {
	questionID := c.Param("id")

	q, ok := h.store.Question(viewerID(c), questionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	profile := currentProfile(c)
	if profile == nil || q.AuthorID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the question author can accept an answer"})
		return
	}

	var in struct {
		AnswerID string `json:"answer_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.AnswerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer_id is required"})
		return
	}

	if !h.store.AcceptAnswer(questionID, in.AnswerID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "answer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accepted": in.AnswerID})
}

// Update edits an answer's body. Owner only.
func (h *AnswerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	a, ok := h.store.AnswerByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "answer not found"})
		return
	}
	profile := currentProfile(c)
	if profile == nil || a.AuthorID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can edit this answer"})
		return
	}

	var in answerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(in.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is required"})
		return
	}

	h.store.UpdateAnswer(id, in.Body)
	updated, _ := h.store.AnswerByID(id)
	c.JSON(http.StatusOK, updated)
}

// Delete removes an answer. Owner only.
func (h *AnswerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	a, ok := h.store.AnswerByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "answer not found"})
		return
	}
	profile := currentProfile(c)
	if profile == nil || a.AuthorID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete this answer"})
		return
	}

	h.store.DeleteAnswer(id)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
