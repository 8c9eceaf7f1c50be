package models

import (
	"time"
)

type Question struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	AuthorID string   `json:"author_id"`
	Author   *Profile `json:"author,omitempty"` // snapshot taken at creation, not kept in sync with later edits
	Tags     []string `json:"tags"`
	// VoteCount may go negative. IsAnswered is true iff one of the
	// question's answers is accepted.
	VoteCount   int       `json:"vote_count"`
	AnswerCount int       `json:"answer_count"`
	ViewCount   int       `json:"view_count"`
	IsAnswered  bool      `json:"is_answered"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// QuestionView is a Question projected for one viewer: the shared entity plus
// that viewer's vote direction and bookmark flag.
type QuestionView struct {
	Question
	UserVote   int  `json:"user_vote"` // -1, 0 or 1
	Bookmarked bool `json:"bookmarked"`
}

// FeedFilter selects how the question feed is narrowed and ordered.
type FeedFilter string

const (
	FilterNewest     FeedFilter = "newest"
	FilterTop        FeedFilter = "top"
	FilterUnanswered FeedFilter = "unanswered"
	FilterHot        FeedFilter = "hot"
	FilterBookmarked FeedFilter = "bookmarked"
)

// ParseFeedFilter maps a query-string value to a FeedFilter, defaulting to
// newest for anything unrecognized.
func ParseFeedFilter(s string) FeedFilter {
	switch FeedFilter(s) {
	case FilterTop, FilterUnanswered, FilterHot, FilterBookmarked:
		return FeedFilter(s)
	default:
		return FilterNewest
	}
}
