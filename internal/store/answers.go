package store

import (
	"strings"
	"time"

	"auditpeer/internal/models"
	"auditpeer/internal/services"
	"auditpeer/internal/utils"
)

// AnswersFor returns one question's answers projected for the viewer, in
// insertion order. Display ordering (accepted first, then votes) is derived
// by the caller.
func (s *Store) AnswersFor(viewerID, questionID string) []models.AnswerView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.AnswerView
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			out = append(out, s.answerView(a, viewerID))
		}
	}
	return out
}

// CreateAnswer appends an answer and bumps the parent's answer count in the
// same transition. Fails when the question does not exist.
func (s *Store) CreateAnswer(author *models.Profile, questionID, body string) (models.AnswerView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qi := s.findQuestion(questionID)
	if qi < 0 {
		return models.AnswerView{}, false
	}

	now := time.Now()
	a := models.Answer{
		ID:         utils.RandStringBytesMaskImpr(8),
		QuestionID: questionID,
		Body:       strings.TrimSpace(body),
		AuthorID:   AnonymousAuthorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if author != nil {
		a.AuthorID = author.ID
		snapshot := *author
		a.Author = &snapshot
	}
	s.answers = append(s.answers, a)

	q := s.questions[qi]
	q.AnswerCount++
	s.questions[qi] = q

	return models.AnswerView{Answer: a}, true
}

// UpdateAnswer replaces an answer's body. Ownership is checked by the caller.
func (s *Store) UpdateAnswer(id, body string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findAnswer(id)
	if i < 0 {
		return false
	}
	a := s.answers[i]
	a.Body = strings.TrimSpace(body)
	a.UpdatedAt = time.Now()
	s.answers[i] = a
	return true
}

// DeleteAnswer removes an answer, decrements the parent's answer count and,
// when the deleted answer was the accepted one, clears the parent's answered
// flag. Votes on the answer go with it.
func (s *Store) DeleteAnswer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findAnswer(id)
	if i < 0 {
		return false
	}
	removed := s.answers[i]
	s.answers = append(s.answers[:i], s.answers[i+1:]...)

	for k := range s.votes {
		if k.kind == models.TargetAnswer && k.targetID == id {
			delete(s.votes, k)
		}
	}

	if qi := s.findQuestion(removed.QuestionID); qi >= 0 {
		q := s.questions[qi]
		if q.AnswerCount > 0 {
			q.AnswerCount--
		}
		if removed.IsAccepted {
			q.IsAnswered = false
		}
		s.questions[qi] = q
	}
	return true
}

// AcceptAnswer designates answerID as the question's accepted answer,
// un-accepting any previous one, and marks the question answered. Idempotent.
// A missing question or an answer that does not belong to it is a no-op.
func (s *Store) AcceptAnswer(questionID, answerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	qi := s.findQuestion(questionID)
	if qi < 0 {
		return false
	}
	ai := s.findAnswer(answerID)
	if ai < 0 || s.answers[ai].QuestionID != questionID {
		return false
	}

	// Collect the question's answer set, run it through the acceptance
	// engine, write the result back in place.
	var idx []int
	var set []models.Answer
	for i, a := range s.answers {
		if a.QuestionID == questionID {
			idx = append(idx, i)
			set = append(set, a)
		}
	}
	for j, a := range services.AcceptAnswer(set, answerID) {
		s.answers[idx[j]] = a
	}

	q := s.questions[qi]
	q.IsAnswered = true
	s.questions[qi] = q
	return true
}

// AnswerByID returns the raw answer, for ownership checks.
func (s *Store) AnswerByID(id string) (models.Answer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findAnswer(id)
	if i < 0 {
		return models.Answer{}, false
	}
	return s.answers[i], true
}
