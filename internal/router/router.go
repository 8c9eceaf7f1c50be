package router

import (
	"auditpeer/internal/handlers"
	"auditpeer/internal/middleware"
	"auditpeer/internal/services"
	"auditpeer/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the whole API surface onto the engine.
func RegisterRoutes(r *gin.Engine, st *store.Store, views *services.ViewCounter) {
	r.Use(middleware.EnsureViewer())
	r.Use(middleware.LoadProfile(st))

	questionHandler := handlers.NewQuestionHandler(st, views)
	answerHandler := handlers.NewAnswerHandler(st)
	voteHandler := handlers.NewVoteHandler(st)
	bookmarkHandler := handlers.NewBookmarkHandler(st)
	templateHandler := handlers.NewTemplateHandler(st)
	profileHandler := handlers.NewProfileHandler(st)
	statsHandler := handlers.NewStatsHandler(st)

	api := r.Group("/api")
	{
		// Feed and questions
		api.GET("/feed", questionHandler.Feed)
		api.POST("/questions", questionHandler.Create)
		api.GET("/questions/:id", questionHandler.Detail)
		api.PUT("/questions/:id", questionHandler.Update)
		api.DELETE("/questions/:id", questionHandler.Delete)

		// Answers
		api.POST("/questions/:id/answers", answerHandler.Create)
		api.POST("/questions/:id/accept", answerHandler.Accept)
		api.PUT("/answers/:id", answerHandler.Update)
		api.DELETE("/answers/:id", answerHandler.Delete)

		// Votes and bookmarks
		api.POST("/vote/:kind/:id", voteHandler.Cast)
		api.POST("/bookmark/:id", bookmarkHandler.Toggle)

		// Template library
		api.GET("/templates", templateHandler.List)
		api.POST("/templates", templateHandler.Create)
		api.POST("/templates/:id/download", templateHandler.Download)

		// Profile and metadata
		api.GET("/profile", profileHandler.Show)
		api.POST("/profile", profileHandler.Save)
		api.GET("/meta", profileHandler.Meta)

		// Sidebar stats
		api.GET("/stats", statsHandler.Stats)
	}
}
