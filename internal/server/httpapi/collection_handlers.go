package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KarloJair/charlore-api/internal/server/collections"
)

type collectionCreateRequest struct {
	Name           string         `json:"name" binding:"required"`
	EncyclopediaID int64          `json:"encyclopedia_id" binding:"required"`
	Description    string         `json:"description"`
	Configuration  map[string]any `json:"configuration"`
}

type collectionResponse struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	EncyclopediaID int64          `json:"encyclopedia_id"`
	Configuration  map[string]any `json:"configuration,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func newCollectionResponse(col *collections.Collection) collectionResponse {
	return collectionResponse{
		ID:             col.ID,
		Name:           col.Name,
		Description:    col.Description,
		EncyclopediaID: col.EncyclopediaID,
		Configuration:  col.Configuration,
		CreatedAt:      col.CreatedAt,
	}
}

// createCollection handles POST /collections.
func (s *Server) createCollection(c *gin.Context) {

	var req collectionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request")
		return
	}

	collection, err := s.collections.Create(c.Request.Context(),
		req.EncyclopediaID, req.Name, req.Description, req.Configuration)
	if err != nil {
		s.respondServiceError(c, err, "encyclopedia not found")
		return
	}

	c.JSON(http.StatusCreated, newCollectionResponse(collection))
}

// listCollections handles GET /collections/:encyclopedia_id.
func (s *Server) listCollections(c *gin.Context) {

	encyclopediaID, err := strconv.ParseInt(c.Param("encyclopedia_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid encyclopedia id")
		return
	}

	result, err := s.collections.ListByEncyclopedia(c.Request.Context(), encyclopediaID)
	if err != nil {
		s.respondServiceError(c, err, "collection not found")
		return
	}

	if len(result) == 0 {
		respondNotFound(c, "collection not found")
		return
	}

	response := make([]collectionResponse, 0, len(result))
	for _, col := range result {
		response = append(response, newCollectionResponse(col))
	}

	c.JSON(http.StatusOK, response)
}
