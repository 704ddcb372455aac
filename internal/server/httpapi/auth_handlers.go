package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,username"`
	Password string `json:"password" binding:"required,min=8"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// register handles POST /auth/.
func (s *Server) register(c *gin.Context) {

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request")
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.respondServiceError(c, err, "user not found")
		return
	}

	c.JSON(http.StatusCreated, userResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// login handles POST /auth/token. Credentials arrive form-encoded; the
// response carries a bearer access token. Every credential failure gets the
// same 401 regardless of cause.
func (s *Server) login(c *gin.Context) {

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c, "invalid request")
		return
	}

	token, err := s.users.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		s.respondServiceError(c, err, "user not found")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
