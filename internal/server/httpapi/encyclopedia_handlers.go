package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KarloJair/charlore-api/internal/server/encyclopedias"
)

type encyclopediaCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CreatedBy   int64  `json:"created_by" binding:"required"`
}

type encyclopediaResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func newEncyclopediaResponse(e *encyclopedias.Encyclopedia) encyclopediaResponse {
	return encyclopediaResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

// createEncyclopedia handles POST /encyclopedias.
func (s *Server) createEncyclopedia(c *gin.Context) {

	var req encyclopediaCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request")
		return
	}

	encyclopedia, err := s.encyclopedias.Create(c.Request.Context(), req.Name, req.Description, req.CreatedBy)
	if err != nil {
		s.respondServiceError(c, err, "user not found")
		return
	}

	c.JSON(http.StatusCreated, newEncyclopediaResponse(encyclopedia))
}

// listEncyclopedias handles GET /encyclopedias/:user_id.
func (s *Server) listEncyclopedias(c *gin.Context) {

	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid user id")
		return
	}

	result, err := s.encyclopedias.ListByUser(c.Request.Context(), userID)
	if err != nil {
		s.respondServiceError(c, err, "encyclopedia not found")
		return
	}

	if len(result) == 0 {
		respondNotFound(c, "encyclopedia not found")
		return
	}

	response := make([]encyclopediaResponse, 0, len(result))
	for _, e := range result {
		response = append(response, newEncyclopediaResponse(e))
	}

	c.JSON(http.StatusOK, response)
}
