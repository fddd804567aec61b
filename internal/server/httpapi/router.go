// Package httpapi exposes the note operations over HTTP with gin. Routes
// are declared as explicit templates; anything that does not match answers
// a JSON 404.
package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/noteapp/internal/logging"
	"github.com/dmitrijs2005/noteapp/internal/server/models"
	"github.com/dmitrijs2005/noteapp/internal/server/services"
	"github.com/gin-gonic/gin"
)

// NoteService is the use-case surface the handlers depend on, implemented
// by services.NoteService and by fakes in tests.
type NoteService interface {
	Create(ctx context.Context, in services.CreateNoteInput) (*models.Note, error)
	List(ctx context.Context, userID string) ([]*models.Note, error)
	Get(ctx context.Context, userID, noteID string) (*models.Note, error)
	Update(ctx context.Context, userID, noteID, title, content string) error
	Delete(ctx context.Context, userID, noteID string) error
}

// NewRouter builds the gin engine with all note routes registered.
func NewRouter(svc NoteService, logger logging.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := &Handlers{svc: svc, logger: logger.With("module", "httpapi")}

	router := gin.New()
	router.Use(h.recovery(), corsMiddleware())

	router.POST("/notes", h.Create)
	router.GET("/notes/:userId", h.List)
	router.GET("/notes/:userId/:noteId", h.Get)
	router.PUT("/notes/:userId/:noteId", h.Update)
	router.DELETE("/notes/:userId/:noteId", h.Delete)
	router.GET("/test", h.Health)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return router
}

// corsMiddleware sets the permissive cross-origin headers on every response
// and answers OPTIONS preflights directly.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// recovery converts panics into the generic 500 body instead of an empty
// response, logging the panic value internally.
func (h *Handlers) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		h.logger.Error(c.Request.Context(), "panic in handler", "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	})
}
