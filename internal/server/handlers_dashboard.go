package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"max.ks1230/fintrack/internal/model/charts"
)

func (s *Server) getDashboard(c *gin.Context) {
	owner := currentUser(c)
	d, err := s.dashboards.Dashboard(c.Request.Context(), owner.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// getDashboardChart renders the dashboard as a PNG. view=week (default)
// draws the trailing 7-day series, view=breakdown the expense pie.
func (s *Server) getDashboardChart(c *gin.Context) {
	owner := currentUser(c)
	d, err := s.dashboards.Dashboard(c.Request.Context(), owner.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var png []byte
	switch view := c.DefaultQuery("view", "week"); view {
	case "week":
		png, err = charts.WeekChart(d.Week)
	case "breakdown":
		png, err = charts.BreakdownPie(d.Breakdown)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be week or breakdown"})
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	if len(png) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
