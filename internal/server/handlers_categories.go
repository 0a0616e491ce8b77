package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"max.ks1230/fintrack/internal/model/tracker"
)

func (s *Server) listCategories(c *gin.Context) {
	owner := currentUser(c)
	cats, err := s.tracker.Categories(c.Request.Context(), owner.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (s *Server) createCategory(c *gin.Context) {
	var body tracker.NewCategory
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	owner := currentUser(c)
	rec, err := s.tracker.AddCategory(c.Request.Context(), owner.ID, body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.notifyChange(owner.ID)
	c.JSON(http.StatusCreated, rec)
}

// deleteCategory cascades to the category's transactions and budgets, so the
// caller must acknowledge with confirm=true.
func (s *Server) deleteCategory(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "deleting a category removes its transactions and budgets; pass confirm=true to proceed",
		})
		return
	}

	owner := currentUser(c)
	if err := s.tracker.DeleteCategory(c.Request.Context(), owner.ID, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	s.notifyChange(owner.ID)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
