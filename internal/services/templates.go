package services

import (
	"sort"

	"auditpeer/internal/models"
)

// FilterTemplates keeps templates matching the category exactly, or passes
// everything through for "all". Fresh slice, input untouched.
func FilterTemplates(all []models.Template, category string) []models.Template {
	out := make([]models.Template, 0, len(all))
	for _, t := range all {
		if category == models.TemplateCategoryAll || t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// SortTemplatesByDownloads orders a template listing most-downloaded first,
// in place. Stable for equal counts.
func SortTemplatesByDownloads(ts []models.Template) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].DownloadCount > ts[j].DownloadCount
	})
}
