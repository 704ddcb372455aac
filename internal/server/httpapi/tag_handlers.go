package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type tagCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type tagResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// createTag handles POST /tags.
func (s *Server) createTag(c *gin.Context) {

	var req tagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request")
		return
	}

	tag, err := s.tags.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		s.respondServiceError(c, err, "tag could not be created")
		return
	}

	c.JSON(http.StatusCreated, tagResponse{
		ID:          tag.ID,
		Name:        tag.Name,
		Description: tag.Description,
		CreatedAt:   tag.CreatedAt,
	})
}
