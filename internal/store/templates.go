package store

import (
	"strings"
	"time"

	"auditpeer/internal/models"
	"auditpeer/internal/utils"
)

// Templates returns the full template collection, insertion order.
func (s *Store) Templates() []models.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// TemplateInput is what the share-template form submits. Sanitized is the
// explicit acknowledgment that no client or engagement detail is left in the
// file; submission is refused without it.
type TemplateInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	FileName    string   `json:"file_name"`
	FileFormat  string   `json:"file_format"`
	Tags        []string `json:"tags"`
	Sanitized   bool     `json:"sanitized"`
}

// CreateTemplate adds a shared template with zeroed download and rating
// counters. Input gating (required fields, category/format vocabulary, the
// sanitization acknowledgment) happens at the handler boundary.
func (s *Store) CreateTemplate(author *models.Profile, in TemplateInput) models.Template {
	t := models.Template{
		ID:          utils.RandStringBytesMaskImpr(8),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		FileName:    in.FileName,
		FileFormat:  in.FileFormat,
		AuthorID:    AnonymousAuthorID,
		Tags:        append([]string(nil), in.Tags...),
		CreatedAt:   time.Now(),
	}
	if author != nil {
		t.AuthorID = author.ID
		snapshot := *author
		t.Author = &snapshot
	}

	s.mu.Lock()
	s.templates = append(s.templates, t)
	s.mu.Unlock()
	return t
}

// DownloadTemplate bumps a template's download counter and returns the new
// count. The counter only ever goes up.
func (s *Store) DownloadTemplate(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID == id {
			t.DownloadCount++
			s.templates[i] = t
			return t.DownloadCount, true
		}
	}
	return 0, false
}
