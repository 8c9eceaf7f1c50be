// Package store is the in-memory repository behind the engine. All state is
// process-local and seeded at startup; every mutation replaces the affected
// entity wholesale under one lock acquisition, so derived fields (vote count,
// answer count, acceptance) can never be observed half-updated.
//
// Votes and bookmarks are relations keyed per viewer, not fields on the shared
// entities; reads project entities into per-viewer views. A production
// deployment would put a durable schema behind the same method set.
package store

import (
	"strings"
	"sync"
	"time"

	"auditpeer/internal/models"
	"auditpeer/internal/utils"
)

const AnonymousAuthorID = "anon"

type voteKey struct {
	viewerID string
	kind     models.TargetType
	targetID string
}

type bookmarkKey struct {
	viewerID   string
	questionID string
}

type Store struct {
	mu        sync.RWMutex
	questions []models.Question
	answers   []models.Answer
	templates []models.Template
	profiles  map[string]models.Profile
	votes     map[voteKey]models.Vote
	bookmarks map[bookmarkKey]models.Bookmark
}

func New() *Store {
	return &Store{
		profiles:  make(map[string]models.Profile),
		votes:     make(map[voteKey]models.Vote),
		bookmarks: make(map[bookmarkKey]models.Bookmark),
	}
}

// findQuestion returns the index of a question, or -1. Callers hold the lock.
func (s *Store) findQuestion(id string) int {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findAnswer(id string) int {
	for i := range s.answers {
		if s.answers[i].ID == id {
			return i
		}
	}
	return -1
}

// questionView projects a question for one viewer. Callers hold at least the
// read lock.
func (s *Store) questionView(q models.Question, viewerID string) models.QuestionView {
	v := models.QuestionView{Question: q}
	if vote, ok := s.votes[voteKey{viewerID, models.TargetQuestion, q.ID}]; ok {
		v.UserVote = vote.Value
	}
	_, v.Bookmarked = s.bookmarks[bookmarkKey{viewerID, q.ID}]
	return v
}

func (s *Store) answerView(a models.Answer, viewerID string) models.AnswerView {
	v := models.AnswerView{Answer: a}
	if vote, ok := s.votes[voteKey{viewerID, models.TargetAnswer, a.ID}]; ok {
		v.UserVote = vote.Value
	}
	return v
}

// Questions returns every question projected for the viewer, in insertion
// order. Ranking is the caller's business.
func (s *Store) Questions(viewerID string) []models.QuestionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.QuestionView, len(s.questions))
	for i, q := range s.questions {
		out[i] = s.questionView(q, viewerID)
	}
	return out
}

// Question returns one question projected for the viewer.
func (s *Store) Question(viewerID, id string) (models.QuestionView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findQuestion(id)
	if i < 0 {
		return models.QuestionView{}, false
	}
	return s.questionView(s.questions[i], viewerID), true
}

// CreateQuestion constructs a question with zeroed counters. A nil author
// posts as the anonymous placeholder.
func (s *Store) CreateQuestion(author *models.Profile, title, body string, tags []string) models.QuestionView {
	now := time.Now()
	q := models.Question{
		ID:        utils.RandStringBytesMaskImpr(8),
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
		AuthorID:  AnonymousAuthorID,
		Tags:      append([]string(nil), tags...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if author != nil {
		q.AuthorID = author.ID
		snapshot := *author
		q.Author = &snapshot
	}

	s.mu.Lock()
	s.questions = append(s.questions, q)
	s.mu.Unlock()

	return models.QuestionView{Question: q}
}

// UpdateQuestion replaces a question's editable fields. Missing ids are a
// no-op. Ownership is checked by the caller.
func (s *Store) UpdateQuestion(id, title, body string, tags []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findQuestion(id)
	if i < 0 {
		return false
	}
	q := s.questions[i]
	q.Title = strings.TrimSpace(title)
	q.Body = strings.TrimSpace(body)
	q.Tags = append([]string(nil), tags...)
	q.UpdatedAt = time.Now()
	s.questions[i] = q
	return true
}

// DeleteQuestion removes a question and fans out to everything it owns: its
// answers, all votes on it and on its answers, and its bookmarks.
func (s *Store) DeleteQuestion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findQuestion(id)
	if i < 0 {
		return false
	}
	s.questions = append(s.questions[:i], s.questions[i+1:]...)

	owned := map[string]bool{}
	kept := s.answers[:0]
	for _, a := range s.answers {
		if a.QuestionID == id {
			owned[a.ID] = true
			continue
		}
		kept = append(kept, a)
	}
	s.answers = kept

	for k := range s.votes {
		if (k.kind == models.TargetQuestion && k.targetID == id) ||
			(k.kind == models.TargetAnswer && owned[k.targetID]) {
			delete(s.votes, k)
		}
	}
	for k := range s.bookmarks {
		if k.questionID == id {
			delete(s.bookmarks, k)
		}
	}
	return true
}

// AddViews bumps a question's view counter. Called by the view counter's
// flush worker, not by request handlers directly.
func (s *Store) AddViews(questionID string, delta int) {
	if delta <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findQuestion(questionID)
	if i < 0 {
		return
	}
	q := s.questions[i]
	q.ViewCount += delta
	s.questions[i] = q
}
