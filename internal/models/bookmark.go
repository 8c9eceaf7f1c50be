package models

import (
	"time"
)

// Bookmark marks a question saved by a viewer.
type Bookmark struct {
	ViewerID   string    `json:"viewer_id"`
	QuestionID string    `json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}
