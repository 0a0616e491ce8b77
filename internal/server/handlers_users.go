package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// signup creates an account and returns its API token. There is nothing to
// provide: the token is the identity.
func (s *Server) signup(c *gin.Context) {
	u, err := s.users.CreateUser(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user_id":   u.ID,
		"api_token": u.APIToken,
	})
}

// linkTelegram attaches a chat to the account so the reporter can deliver
// overspend alerts.
func (s *Server) linkTelegram(c *gin.Context) {
	var body struct {
		ChatID int64 `json:"chat_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if body.ChatID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat_id must be set"})
		return
	}

	owner := currentUser(c)
	if err := s.users.SetTelegramChat(c.Request.Context(), owner.ID, body.ChatID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "linked"})
}
