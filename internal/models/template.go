package models

import (
	"time"
)

// Template is a shared workpaper, checklist or policy document. Shared
// templates must be explicitly acknowledged as sanitized before submission;
// the store refuses them otherwise.
type Template struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	FileName      string    `json:"file_name"`
	FileFormat    string    `json:"file_format"`
	AuthorID      string    `json:"author_id"`
	Author        *Profile  `json:"author,omitempty"`
	DownloadCount int       `json:"download_count"` // never decreases
	RatingAvg     float64   `json:"rating_avg"`
	RatingCount   int       `json:"rating_count"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
}

// TemplateCategoryAll is the passthrough category for listings.
const TemplateCategoryAll = "all"

var TemplateCategories = []string{
	"Evidence",
	"Checklists",
	"Risk Assessment",
	"Reports",
	"Policies",
}

var TemplateFormats = []string{"xlsx", "docx", "pdf", "zip"}

func IsTemplateCategory(s string) bool {
	for _, c := range TemplateCategories {
		if s == c {
			return true
		}
	}
	return false
}

func IsTemplateFormat(s string) bool {
	for _, f := range TemplateFormats {
		if s == f {
			return true
		}
	}
	return false
}
