package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"max.ks1230/fintrack/internal/model/tracker"
)

func (s *Server) listBudgets(c *gin.Context) {
	owner := currentUser(c)
	buds, err := s.tracker.Budgets(c.Request.Context(), owner.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, buds)
}

func (s *Server) createBudget(c *gin.Context) {
	var body tracker.NewBudget
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	owner := currentUser(c)
	rec, err := s.tracker.AddBudget(c.Request.Context(), owner.ID, body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.notifyChange(owner.ID)
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) deleteBudget(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pass confirm=true to delete"})
		return
	}

	owner := currentUser(c)
	if err := s.tracker.DeleteBudget(c.Request.Context(), owner.ID, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	s.notifyChange(owner.ID)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
