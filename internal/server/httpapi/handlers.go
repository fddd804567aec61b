package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/noteapp/internal/common"
	"github.com/dmitrijs2005/noteapp/internal/logging"
	"github.com/dmitrijs2005/noteapp/internal/server/services"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	svc    NoteService
	logger logging.Logger
}

type createNoteRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageBase64 string `json:"imageBase64"`
	ImageName   string `json:"imageName"`
}

type updateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create handles POST /notes. A body that cannot be parsed or misses a
// required field answers 400; a failed image upload answers 500 and no note
// is written.
func (h *Handlers) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing userId, title, or content"})
		return
	}

	note, err := h.svc.Create(c.Request.Context(), services.CreateNoteInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Content:     req.Content,
		ImageBase64: req.ImageBase64,
		ImageName:   req.ImageName,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing userId, title, or content"})
		case errors.Is(err, common.ErrorUpload):
			h.logger.Error(c.Request.Context(), "image upload failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
		default:
			h.fail(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Note created", "note": note})
}

// List handles GET /notes/:userId.
func (h *Handlers) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": result})
}

// Get handles GET /notes/:userId/:noteId. The note is returned as the raw
// body, not wrapped in an envelope key.
func (h *Handlers) Get(c *gin.Context) {
	note, err := h.svc.Get(c.Request.Context(), c.Param("userId"), c.Param("noteId"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Note not found"})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// Update handles PUT /notes/:userId/:noteId. Only title and content change;
// updating a missing note still answers 200.
func (h *Handlers) Update(c *gin.Context) {
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing title or content"})
		return
	}

	err := h.svc.Update(c.Request.Context(), c.Param("userId"), c.Param("noteId"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing title or content"})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated"})
}

// Delete handles DELETE /notes/:userId/:noteId. Deleting a missing note
// still answers 200.
func (h *Handlers) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("userId"), c.Param("noteId"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

// Health handles GET /test.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Note-taking API is working!"})
}

// fail logs the underlying error and answers the generic 500 body. Error
// details never cross the API boundary.
func (h *Handlers) fail(c *gin.Context, err error) {
	h.logger.Error(c.Request.Context(), "request failed",
		"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}
