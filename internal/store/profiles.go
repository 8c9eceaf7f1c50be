package store

import (
	"strings"
	"time"

	"auditpeer/internal/models"
	"auditpeer/internal/utils"
)

// ProfileInput is what the multi-step profile form submits. Everything is
// optional; a blank username gets a generated pseudonym.
type ProfileInput struct {
	Username       string   `json:"username"`
	JobTitle       string   `json:"job_title"`
	Industry       string   `json:"industry"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications"`
	AvatarGradient string   `json:"avatar_gradient"`
}

// SaveProfile creates the session's profile on first save and mutates it in
// place afterwards. Reputation and creation time survive edits. The username
// invariant (never empty) is enforced here.
func (s *Store) SaveProfile(id string, in ProfileInput) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.profiles[id]
	if !exists {
		p = models.Profile{
			ID:          id,
			IsAnonymous: true,
			CreatedAt:   time.Now(),
		}
		if p.ID == "" {
			p.ID = utils.RandStringBytesMaskImpr(8)
		}
	}

	p.Username = strings.TrimSpace(in.Username)
	if p.Username == "" {
		p.Username = utils.GeneratePseudonym()
	}
	p.JobTitle = in.JobTitle
	p.Industry = in.Industry
	p.Experience = in.Experience
	p.Certifications = append([]string(nil), in.Certifications...)
	p.AvatarGradient = in.AvatarGradient
	if p.AvatarGradient == "" {
		p.AvatarGradient = utils.AvatarGradients[0]
	}

	s.profiles[p.ID] = p
	return p
}

// ProfileByID looks up a profile.
func (s *Store) ProfileByID(id string) (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	return p, ok
}
