package services

import (
	"sort"

	"auditpeer/internal/models"
)

// AcceptAnswer returns a fresh copy of one question's answer set in which
// exactly the answer matching acceptedID is accepted and every other answer is
// not. Re-accepting the already-accepted answer is a no-op; an id that matches
// nothing clears any previous acceptance and accepts nothing.
//
// The engine does not check who is asking — rejecting non-authors is the
// caller's job.
func AcceptAnswer(answers []models.Answer, acceptedID string) []models.Answer {
	out := make([]models.Answer, len(answers))
	for i, a := range answers {
		a.IsAccepted = a.ID == acceptedID
		out[i] = a
	}
	return out
}

// OrderAnswers orders one question's answers for display: the accepted answer
// pinned first, the rest by vote count descending. Stable, so ties keep
// insertion order. Derived on every read, never stored.
func OrderAnswers(answers []models.AnswerView) []models.AnswerView {
	out := make([]models.AnswerView, len(answers))
	copy(out, answers)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsAccepted != out[j].IsAccepted {
			return out[i].IsAccepted
		}
		return out[i].VoteCount > out[j].VoteCount
	})
	return out
}
