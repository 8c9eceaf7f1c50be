package store

import (
	"time"

	"auditpeer/internal/models"
	"auditpeer/internal/services"
)

// CastVote applies one viewer's vote to a question or answer: same direction
// retracts, opposite direction switches. The new count and the viewer's new
// direction are written under the same lock so they can never disagree. A
// missing target is a no-op.
func (s *Store) CastVote(viewerID string, kind models.TargetType, targetID string, value int) (userVote, voteCount int, ok bool) {
	if value != 1 && value != -1 {
		return 0, 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{viewerID, kind, targetID}
	current := 0
	if v, exists := s.votes[key]; exists {
		current = v.Value
	}

	switch kind {
	case models.TargetQuestion:
		i := s.findQuestion(targetID)
		if i < 0 {
			return 0, 0, false
		}
		q := s.questions[i]
		userVote, q.VoteCount = services.ApplyVote(current, q.VoteCount, value)
		s.questions[i] = q
		voteCount = q.VoteCount

	case models.TargetAnswer:
		i := s.findAnswer(targetID)
		if i < 0 {
			return 0, 0, false
		}
		a := s.answers[i]
		userVote, a.VoteCount = services.ApplyVote(current, a.VoteCount, value)
		s.answers[i] = a
		voteCount = a.VoteCount

	default:
		return 0, 0, false
	}

	if userVote == 0 {
		delete(s.votes, key)
	} else {
		s.votes[key] = models.Vote{
			ViewerID:   viewerID,
			TargetID:   targetID,
			TargetType: kind,
			Value:      userVote,
			CreatedAt:  time.Now(),
		}
	}
	return userVote, voteCount, true
}

// ToggleBookmark flips the viewer's bookmark on a question and reports the
// new state.
func (s *Store) ToggleBookmark(viewerID, questionID string) (bookmarked bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findQuestion(questionID) < 0 {
		return false, false
	}

	key := bookmarkKey{viewerID, questionID}
	if _, exists := s.bookmarks[key]; exists {
		delete(s.bookmarks, key)
		return false, true
	}
	s.bookmarks[key] = models.Bookmark{
		ViewerID:   viewerID,
		QuestionID: questionID,
		CreatedAt:  time.Now(),
	}
	return true, true
}

// BookmarkCount counts how many viewers saved a question.
func (s *Store) BookmarkCount(questionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for k := range s.bookmarks {
		if k.questionID == questionID {
			n++
		}
	}
	return n
}
