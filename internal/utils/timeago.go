package utils

import (
	"fmt"
	"time"
)

// TimeAgo renders a timestamp as a compact relative string ("just now",
// "5m ago", "3d ago", "2w ago").
func TimeAgo(t time.Time) string {
	seconds := int(time.Since(t).Seconds())

	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%dd ago", seconds/86400)
	}
	return fmt.Sprintf("%dw ago", seconds/604800)
}
