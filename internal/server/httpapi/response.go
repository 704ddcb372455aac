package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KarloJair/charlore-api/internal/common"
)

// unauthorizedDetail is the single message for every 401: missing token,
// bad token and bad credentials must be indistinguishable to the caller.
const unauthorizedDetail = "could not validate credentials"

type errorResponse struct {
	Detail string `json:"detail"`
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Detail: unauthorizedDetail})
}

func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, errorResponse{Detail: detail})
}

func respondNotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, errorResponse{Detail: detail})
}

// respondServiceError maps a service failure onto the error taxonomy:
// invalid credentials → 401 (uniform body), conflict → 409,
// not found → 404, anything else → 500 with a generic body. Internal
// failures are never conflated with authentication failures.
func (s *Server) respondServiceError(c *gin.Context, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		abortUnauthorized(c)
	case errors.Is(err, common.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse{Detail: "user already exists"})
	case errors.Is(err, common.ErrNotFound):
		respondNotFound(c, notFoundDetail)
	default:
		s.logger.Error(c.Request.Context(), "internal error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}
