package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auditpeer/internal/models"
	"auditpeer/internal/router"
	"auditpeer/internal/services"
	"auditpeer/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// client drives the API and carries the session cookie between requests, so
// consecutive calls act as the same viewer.
type client struct {
	t       *testing.T
	engine  *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T) (*client, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	st.Seed()
	views := services.NewViewCounter(st, 10*time.Millisecond)
	t.Cleanup(views.Close)

	engine := gin.New()
	engine.Use(sessions.Sessions("auditpeer_session", cookie.NewStore([]byte("test-secret"))))
	router.RegisterRoutes(engine, st, views)

	return &client{t: t, engine: engine}, st
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(buf))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

type feedResponse struct {
	Filter    string                `json:"filter"`
	Questions []models.QuestionView `json:"questions"`
	Total     int                   `json:"total"`
}

func TestFeedDefaultIsNewest(t *testing.T) {
	c, _ := newClient(t)

	w := c.do(http.MethodGet, "/api/feed", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp feedResponse
	decode(t, w, &resp)
	if resp.Total == 0 {
		t.Fatal("seeded feed is empty")
	}
	for i := 1; i < len(resp.Questions); i++ {
		if resp.Questions[i].CreatedAt.After(resp.Questions[i-1].CreatedAt) {
			t.Errorf("feed not newest-first at index %d", i)
		}
	}
}

func TestFeedHotFilter(t *testing.T) {
	c, _ := newClient(t)

	var resp feedResponse
	decode(t, c.do(http.MethodGet, "/api/feed?filter=hot", nil), &resp)

	for _, q := range resp.Questions {
		if q.VoteCount < 15 && q.ViewCount < 300 {
			t.Errorf("%s (votes %d, views %d) should not be hot", q.ID, q.VoteCount, q.ViewCount)
		}
	}
	seen := map[string]bool{}
	for _, q := range resp.Questions {
		seen[q.ID] = true
	}
	if !seen["q9"] { // 16 votes, 95 views: hot on votes alone
		t.Error("q9 missing from hot feed")
	}
	if seen["q2"] { // 8 votes, 120 views
		t.Error("q2 should not be hot")
	}
}

func TestFeedSearch(t *testing.T) {
	c, _ := newClient(t)

	var resp feedResponse
	decode(t, c.do(http.MethodGet, "/api/feed?q=Siem", nil), &resp)
	if resp.Total != 1 || resp.Questions[0].ID != "q4" {
		t.Errorf("search for Siem = %v", resp.Questions)
	}

	decode(t, c.do(http.MethodGet, "/api/feed?q=definitely-not-a-topic", nil), &resp)
	if resp.Total != 0 {
		t.Errorf("no-match search returned %d questions", resp.Total)
	}
}

func TestSubmitQuestionGates(t *testing.T) {
	c, _ := newClient(t)

	w := c.do(http.MethodPost, "/api/questions", gin.H{"body": "no title"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing title: status = %d, want 400", w.Code)
	}
	w = c.do(http.MethodPost, "/api/questions", gin.H{"title": "no body"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing body: status = %d, want 400", w.Code)
	}
	w = c.do(http.MethodPost, "/api/questions", gin.H{
		"title": "t", "body": "b",
		"tags": []string{"a", "b", "c", "d", "e", "f"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("too many tags: status = %d, want 400", w.Code)
	}

	w = c.do(http.MethodPost, "/api/questions", gin.H{
		"title": "Scoping DORA for a fintech", "body": "Where do I start?",
		"tags": []string{"risk"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("valid submit: status = %d, want 201", w.Code)
	}
	var created models.QuestionView
	decode(t, w, &created)
	if created.AuthorID != "anon" {
		t.Errorf("author_id = %q, want anon without a profile", created.AuthorID)
	}

	var resp feedResponse
	decode(t, c.do(http.MethodGet, "/api/feed?filter=unanswered", nil), &resp)
	found := false
	for _, q := range resp.Questions {
		if q.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("new question missing from unanswered feed")
	}
}

func TestVoteRoundTrip(t *testing.T) {
	c, _ := newClient(t)

	var resp struct {
		VoteCount int `json:"vote_count"`
		UserVote  int `json:"user_vote"`
	}

	// q2 seeds with 8 votes
	decode(t, c.do(http.MethodPost, "/api/vote/question/q2", gin.H{"value": 1}), &resp)
	if resp.VoteCount != 9 || resp.UserVote != 1 {
		t.Fatalf("upvote: got (%d, %d), want (9, 1)", resp.VoteCount, resp.UserVote)
	}
	decode(t, c.do(http.MethodPost, "/api/vote/question/q2", gin.H{"value": 1}), &resp)
	if resp.VoteCount != 8 || resp.UserVote != 0 {
		t.Fatalf("retract: got (%d, %d), want (8, 0)", resp.VoteCount, resp.UserVote)
	}
	decode(t, c.do(http.MethodPost, "/api/vote/question/q2", gin.H{"value": -1}), &resp)
	if resp.VoteCount != 7 || resp.UserVote != -1 {
		t.Fatalf("downvote: got (%d, %d), want (7, -1)", resp.VoteCount, resp.UserVote)
	}

	if w := c.do(http.MethodPost, "/api/vote/question/q2", gin.H{"value": 5}); w.Code != http.StatusBadRequest {
		t.Errorf("invalid value: status = %d, want 400", w.Code)
	}
	if w := c.do(http.MethodPost, "/api/vote/story/q2", gin.H{"value": 1}); w.Code != http.StatusBadRequest {
		t.Errorf("invalid kind: status = %d, want 400", w.Code)
	}
	if w := c.do(http.MethodPost, "/api/vote/question/missing", gin.H{"value": 1}); w.Code != http.StatusNotFound {
		t.Errorf("missing target: status = %d, want 404", w.Code)
	}
}

func TestAcceptRequiresQuestionAuthor(t *testing.T) {
	c, _ := newClient(t)

	// Seeded q2 belongs to a seed profile, not this session.
	w := c.do(http.MethodPost, "/api/questions/q2/accept", gin.H{"answer_id": "whatever"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign accept: status = %d, want 403", w.Code)
	}

	// Create a profile, ask a question, answer it, then accept as the author.
	if w := c.do(http.MethodPost, "/api/profile", gin.H{"username": "TestAsker1"}); w.Code != http.StatusOK {
		t.Fatalf("profile save: status = %d", w.Code)
	}
	var q models.QuestionView
	decode(t, c.do(http.MethodPost, "/api/questions", gin.H{"title": "t", "body": "b"}), &q)
	var a models.AnswerView
	decode(t, c.do(http.MethodPost, "/api/questions/"+q.ID+"/answers", gin.H{"body": "an answer"}), &a)

	if w := c.do(http.MethodPost, "/api/questions/"+q.ID+"/accept", gin.H{"answer_id": a.ID}); w.Code != http.StatusOK {
		t.Fatalf("author accept: status = %d, want 200", w.Code)
	}

	var detail struct {
		Question models.QuestionView `json:"question"`
		Answers  []models.AnswerView `json:"answers"`
	}
	decode(t, c.do(http.MethodGet, "/api/questions/"+q.ID, nil), &detail)
	if !detail.Question.IsAnswered {
		t.Error("question not marked answered")
	}
	if len(detail.Answers) != 1 || !detail.Answers[0].IsAccepted {
		t.Error("accepted answer not first in detail")
	}
}

func TestTemplateSanitizationGate(t *testing.T) {
	c, _ := newClient(t)

	tpl := gin.H{
		"title": "Firewall Review Checklist", "description": "Rule review workpaper",
		"category": "Checklists", "file_name": "fw-review.xlsx", "file_format": "xlsx",
		"tags": []string{"evidence"},
	}
	if w := c.do(http.MethodPost, "/api/templates", tpl); w.Code != http.StatusBadRequest {
		t.Fatalf("unsanitized share: status = %d, want 400", w.Code)
	}

	tpl["sanitized"] = true
	w := c.do(http.MethodPost, "/api/templates", tpl)
	if w.Code != http.StatusCreated {
		t.Fatalf("sanitized share: status = %d, want 201", w.Code)
	}
	var created models.Template
	decode(t, w, &created)

	var dl struct {
		DownloadCount int `json:"download_count"`
	}
	decode(t, c.do(http.MethodPost, "/api/templates/"+created.ID+"/download", nil), &dl)
	if dl.DownloadCount != 1 {
		t.Errorf("download_count = %d, want 1", dl.DownloadCount)
	}
}

func TestTemplateListSortedByDownloads(t *testing.T) {
	c, _ := newClient(t)

	var resp struct {
		Templates []models.Template `json:"templates"`
	}
	decode(t, c.do(http.MethodGet, "/api/templates", nil), &resp)
	for i := 1; i < len(resp.Templates); i++ {
		if resp.Templates[i].DownloadCount > resp.Templates[i-1].DownloadCount {
			t.Errorf("templates not download-sorted at index %d", i)
		}
	}

	decode(t, c.do(http.MethodGet, "/api/templates?category=Evidence", nil), &resp)
	for _, tpl := range resp.Templates {
		if tpl.Category != "Evidence" {
			t.Errorf("category filter leaked %q", tpl.Category)
		}
	}
	if w := c.do(http.MethodGet, "/api/templates?category=Nonsense", nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown category: status = %d, want 400", w.Code)
	}
}

func TestBookmarkFlow(t *testing.T) {
	c, _ := newClient(t)

	var resp struct {
		Bookmarked bool `json:"bookmarked"`
		Count      int  `json:"count"`
	}
	decode(t, c.do(http.MethodPost, "/api/bookmark/q3", nil), &resp)
	if !resp.Bookmarked || resp.Count != 1 {
		t.Fatalf("toggle on: got (%v, %d)", resp.Bookmarked, resp.Count)
	}

	var feed feedResponse
	decode(t, c.do(http.MethodGet, "/api/feed?filter=bookmarked", nil), &feed)
	if feed.Total != 1 || feed.Questions[0].ID != "q3" {
		t.Errorf("bookmarked feed = %v", feed.Questions)
	}

	decode(t, c.do(http.MethodPost, "/api/bookmark/q3", nil), &resp)
	if resp.Bookmarked || resp.Count != 0 {
		t.Errorf("toggle off: got (%v, %d)", resp.Bookmarked, resp.Count)
	}
}

func TestProfileSaveAndFallback(t *testing.T) {
	c, _ := newClient(t)

	if w := c.do(http.MethodGet, "/api/profile", nil); w.Code != http.StatusNotFound {
		t.Errorf("fresh session profile: status = %d, want 404", w.Code)
	}

	var p models.Profile
	decode(t, c.do(http.MethodPost, "/api/profile", gin.H{}), &p)
	if p.Username == "" {
		t.Error("blank username not replaced with a pseudonym")
	}

	var again models.Profile
	decode(t, c.do(http.MethodGet, "/api/profile", nil), &again)
	if again.ID != p.ID {
		t.Errorf("session lost its profile: %q vs %q", again.ID, p.ID)
	}
}

func TestDetailBumpsViews(t *testing.T) {
	c, st := newClient(t)

	before, _ := st.Question("x", "q5")
	c.do(http.MethodGet, "/api/questions/q5", nil)
	c.do(http.MethodGet, "/api/questions/q5", nil)

	deadline := time.Now().Add(2 * time.Second)
	for {
		after, _ := st.Question("x", "q5")
		if after.ViewCount >= before.ViewCount+2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("view count stuck at %d", after.ViewCount)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if w := c.do(http.MethodGet, "/api/questions/missing", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing question: status = %d, want 404", w.Code)
	}
}
