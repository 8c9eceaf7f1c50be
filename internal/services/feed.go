package services

import (
	"sort"
	"strings"

	"auditpeer/internal/models"
)

// HotConfig tunes the hot feed: the entry thresholds and the score weights.
type HotConfig struct {
	MinVotes   int     // vote_count threshold for inclusion
	MinViews   int     // view_count threshold for inclusion
	WeightVote float64 // 2.0
	WeightView float64 // 0.01
}

var DefaultHotConfig = HotConfig{
	MinVotes:   15,
	MinViews:   300,
	WeightVote: 2.0,
	WeightView: 0.01,
}

// HotScore is the trending metric a hot feed is ordered by.
func (cfg HotConfig) HotScore(q models.QuestionView) float64 {
	return float64(q.VoteCount)*cfg.WeightVote + float64(q.ViewCount)*cfg.WeightView
}

// IsHot reports whether a question qualifies for the hot feed at all.
func (cfg HotConfig) IsHot(q models.QuestionView) bool {
	return q.VoteCount >= cfg.MinVotes || q.ViewCount >= cfg.MinViews
}

// RankQuestions derives an ordered, filtered feed from the question
// collection. The search text narrows by title or tag (case-insensitive)
// before the filter is applied, whatever the filter mode. The input slice is
// never mutated; all sorts are stable so ties keep their incoming order.
func RankQuestions(all []models.QuestionView, filter models.FeedFilter, search string) []models.QuestionView {
	qs := make([]models.QuestionView, len(all))
	copy(qs, all)

	if needle := strings.TrimSpace(search); needle != "" {
		needle = strings.ToLower(needle)
		matched := qs[:0]
		for _, q := range qs {
			if matchesSearch(q, needle) {
				matched = append(matched, q)
			}
		}
		qs = matched
	}

	switch filter {
	case models.FilterUnanswered:
		// Zero answers, not "no accepted answer": a question with only
		// unaccepted answers does not belong here.
		out := qs[:0]
		for _, q := range qs {
			if q.AnswerCount == 0 {
				out = append(out, q)
			}
		}
		return out

	case models.FilterBookmarked:
		out := qs[:0]
		for _, q := range qs {
			if q.Bookmarked {
				out = append(out, q)
			}
		}
		return out

	case models.FilterHot:
		out := qs[:0]
		for _, q := range qs {
			if DefaultHotConfig.IsHot(q) {
				out = append(out, q)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return DefaultHotConfig.HotScore(out[i]) > DefaultHotConfig.HotScore(out[j])
		})
		return out

	case models.FilterTop:
		sort.SliceStable(qs, func(i, j int) bool {
			return qs[i].VoteCount > qs[j].VoteCount
		})
		return qs

	default: // newest
		sort.SliceStable(qs, func(i, j int) bool {
			return qs[i].CreatedAt.After(qs[j].CreatedAt)
		})
		return qs
	}
}

func matchesSearch(q models.QuestionView, needle string) bool {
	if strings.Contains(strings.ToLower(q.Title), needle) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
