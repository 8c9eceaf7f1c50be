package middleware

import (
	"log"

	"auditpeer/internal/store"
	"auditpeer/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const ViewerKey = "viewer_id"
const ProfileKey = "profile"

const sessionViewerID = "viewer_id"
const sessionProfileID = "profile_id"

// EnsureViewer gives every session a stable anonymous viewer id so votes and
// bookmarks work before (or without) a profile ever being created.
func EnsureViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		viewerID, _ := session.Get(sessionViewerID).(string)
		if viewerID == "" {
			viewerID = utils.RandStringBytesMaskImpr(8)
			session.Set(sessionViewerID, viewerID)
			if err := session.Save(); err != nil {
				log.Printf("Failed to save session: %v", err)
			}
		}
		c.Set(ViewerKey, viewerID)
		c.Next()
	}
}

// LoadProfile resolves the session's saved profile, if one exists, and plants
// it in the request context. A session has at most one active profile.
func LoadProfile(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if pid, ok := session.Get(sessionProfileID).(string); ok && pid != "" {
			if p, found := st.ProfileByID(pid); found {
				c.Set(ProfileKey, &p)
			}
		}
		c.Next()
	}
}

// BindProfile records the profile as the session's active one.
func BindProfile(c *gin.Context, profileID string) error {
	session := sessions.Default(c)
	session.Set(sessionProfileID, profileID)
	return session.Save()
}
