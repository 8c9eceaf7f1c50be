package models

import (
	"time"
)

type Answer struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Body       string    `json:"body"`
	AuthorID   string    `json:"author_id"`
	Author     *Profile  `json:"author,omitempty"` // creation-time snapshot, same semantics as Question.Author
	VoteCount  int       `json:"vote_count"`
	IsAccepted bool      `json:"is_accepted"` // at most one accepted answer per question
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AnswerView is an Answer plus the current viewer's vote direction.
type AnswerView struct {
	Answer
	UserVote int `json:"user_vote"`
}
