package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KarloJair/charlore-api/internal/server/elements"
)

type elementCreateRequest struct {
	Name         string         `json:"name" binding:"required"`
	Description  string         `json:"description"`
	Data         map[string]any `json:"data"`
	CollectionID int64          `json:"collection_id" binding:"required"`
}

type elementUpdateRequest struct {
	Name         *string        `json:"name"`
	Description  *string        `json:"description"`
	Data         map[string]any `json:"data"`
	CollectionID *int64         `json:"collection_id"`
}

type elementResponse struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Data         map[string]any `json:"data,omitempty"`
	CollectionID int64          `json:"collection_id"`
	CreatedAt    time.Time      `json:"created_at"`
}

// elementSummaryResponse is the compact shape returned by the per-collection
// listing.
type elementSummaryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newElementResponse(e *elements.Element) elementResponse {
	return elementResponse{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Data:         e.Data,
		CollectionID: e.CollectionID,
		CreatedAt:    e.CreatedAt,
	}
}

// createElement handles POST /elements.
func (s *Server) createElement(c *gin.Context) {

	var req elementCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request")
		return
	}

	element, err := s.elements.Create(c.Request.Context(),
		req.CollectionID, req.Name, req.Description, req.Data)
	if err != nil {
		s.respondServiceError(c, err, "collection not found")
		return
	}

	c.JSON(http.StatusCreated, newElementResponse(element))
}

// listElements handles GET /elements/:collection_id.
func (s *Server) listElements(c *gin.Context) {

	collectionID, err := strconv.ParseInt(c.Param("collection_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid collection id")
		return
	}

	result, err := s.elements.ListByCollection(c.Request.Context(), collectionID)
	if err != nil {
		s.respondServiceError(c, err, "element not found")
		return
	}

	if len(result) == 0 {
		respondNotFound(c, "element not found")
		return
	}

	response := make([]elementSummaryResponse, 0, len(result))
	for _, e := range result {
		response = append(response, elementSummaryResponse{
			ID:        e.ID,
			Name:      e.Name,
			CreatedAt: e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// getElement handles GET /element/:element_id.
func (s *Server) getElement(c *gin.Context) {

	id, err := strconv.ParseInt(c.Param("element_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid element id")
		return
	}

	element, err := s.elements.Get(c.Request.Context(), id)
	if err != nil {
		s.respondServiceError(c, err, "element not found")
		return
	}

	c.JSON(http.StatusOK, newElementResponse(element))
}

// updateElement handles PATCH /element/:element_id. Only the fields present
// in the body change.
func (s *Server) updateElement(c *gin.Context) {

	id, err := strconv.ParseInt(c.Param("element_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid element id")
		return
	}

	var req elementUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request")
		return
	}

	element, err := s.elements.Update(c.Request.Context(), id, elements.Patch{
		Name:         req.Name,
		Description:  req.Description,
		Data:         req.Data,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		s.respondServiceError(c, err, "element not found")
		return
	}

	c.JSON(http.StatusOK, newElementResponse(element))
}

// deleteElement handles DELETE /element_delete/:element_id.
func (s *Server) deleteElement(c *gin.Context) {

	id, err := strconv.ParseInt(c.Param("element_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid element id")
		return
	}

	if err := s.elements.Delete(c.Request.Context(), id); err != nil {
		s.respondServiceError(c, err, "element not found")
		return
	}

	c.Status(http.StatusNoContent)
}
