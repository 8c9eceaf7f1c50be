package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"auditpeer/internal/models"
	"auditpeer/internal/services"
	"auditpeer/internal/store"

	"github.com/gin-gonic/gin"
)

const maxTags = 5

type QuestionHandler struct {
	store *store.Store
	views *services.ViewCounter
}

func NewQuestionHandler(st *store.Store, views *services.ViewCounter) *QuestionHandler {
	return &QuestionHandler{store: st, views: views}
}

// Feed returns the ranked question list for the requested filter mode and
// optional search text. An empty result is a normal response, not an error.
func (h *QuestionHandler) Feed(c *gin.Context) {
	filter := models.ParseFeedFilter(c.Query("filter"))
	query := c.Query("q")

	questions := services.RankQuestions(h.store.Questions(viewerID(c)), filter, query)

	c.JSON(http.StatusOK, gin.H{
		"filter":    filter,
		"query":     query,
		"questions": questions,
		"total":     len(questions),
	})
}

type questionPayload struct {
	models.QuestionView
	BodyHTML template.HTML `json:"body_html"`
}

type answerPayload struct {
	models.AnswerView
	BodyHTML template.HTML `json:"body_html"`
}

// Detail returns one question with its ordered answers and schedules a view
// bump; the bump lands asynchronously so the read never waits on it.
func (h *QuestionHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	q, ok := h.store.Question(viewerID(c), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	h.views.Bump(id)

	ordered := services.OrderAnswers(h.store.AnswersFor(viewerID(c), id))
	answers := make([]answerPayload, len(ordered))
	for i, a := range ordered {
		answers[i] = answerPayload{
			AnswerView: a,
			BodyHTML:   renderBody("answer", a.ID, a.UpdatedAt, a.Body),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"question": questionPayload{
			QuestionView: q,
			BodyHTML:     renderBody("question", q.ID, q.UpdatedAt, q.Body),
		},
		"answers": answers,
	})
}

type questionInput struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

func (in *questionInput) validate() string {
	if strings.TrimSpace(in.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(in.Body) == "" {
		return "body is required"
	}
	if len(in.Tags) > maxTags {
		return "at most 5 tags"
	}
	return ""
}

// Create posts a new question. Anyone can ask; without a profile the author
// is the anonymous placeholder.
func (h *QuestionHandler) Create(c *gin.Context) {
	var in questionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg := in.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	q := h.store.CreateQuestion(currentProfile(c), in.Title, in.Body, in.Tags)
	c.JSON(http.StatusCreated, q)
}

// Update edits a question. Owner only; anonymously-posted questions have no
// owner and cannot be edited.
func (h *QuestionHandler) Update(c *gin.Context) {
	id := c.Param("id")

	q, ok := h.store.Question(viewerID(c), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	profile := currentProfile(c)
	if profile == nil || q.AuthorID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can edit this question"})
		return
	}

	var in questionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg := in.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	h.store.UpdateQuestion(id, in.Title, in.Body, in.Tags)
	updated, _ := h.store.Question(viewerID(c), id)
	c.JSON(http.StatusOK, updated)
}

// Delete removes a question and everything it owns. Owner only.
func (h *QuestionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	q, ok := h.store.Question(viewerID(c), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}
	profile := currentProfile(c)
	if profile == nil || q.AuthorID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete this question"})
		return
	}

	h.store.DeleteQuestion(id)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
