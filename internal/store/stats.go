package store

import (
	"auditpeer/internal/models"
)

// CommunityStats aggregates the feed-sidebar numbers.
func (s *Store) CommunityStats() models.CommunityStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := models.CommunityStats{
		Questions: len(s.questions),
		Answers:   len(s.answers),
		Members:   len(s.profiles),
	}
	if len(s.questions) > 0 {
		answered := 0
		for _, q := range s.questions {
			if q.IsAnswered {
				answered++
			}
		}
		st.AnsweredPct = 100 * float64(answered) / float64(len(s.questions))
	}
	return st
}

// TemplateStats aggregates the template-library numbers.
func (s *Store) TemplateStats() models.TemplateStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := models.TemplateStats{Total: len(s.templates)}
	for _, t := range s.templates {
		st.TotalDownloads += t.DownloadCount
		if t.RatingAvg > st.TopRating {
			st.TopRating = t.RatingAvg
		}
	}
	return st
}
