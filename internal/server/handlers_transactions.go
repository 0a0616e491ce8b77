package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"max.ks1230/fintrack/internal/entity/transaction"
	"max.ks1230/fintrack/internal/model/customerr"
	"max.ks1230/fintrack/internal/model/tracker"
)

const dateLayout = "2006-01-02"

var errInvalidLimit = &customerr.ValidationError{Err: "limit must be a positive integer"}

func errInvalidDate(field string) error {
	return &customerr.ValidationError{Err: field + " must be a date in the form " + dateLayout}
}

func (s *Server) listTransactions(c *gin.Context) {
	filter, err := parseFilter(c, s.pageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner := currentUser(c)
	txs, err := s.tracker.Transactions(c.Request.Context(), owner.ID, filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (s *Server) createTransaction(c *gin.Context) {
	var body tracker.NewTransaction
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	owner := currentUser(c)
	rec, err := s.tracker.AddTransaction(c.Request.Context(), owner.ID, body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.notifyChange(owner.ID)
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) deleteTransaction(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pass confirm=true to delete"})
		return
	}

	owner := currentUser(c)
	if err := s.tracker.DeleteTransaction(c.Request.Context(), owner.ID, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	s.notifyChange(owner.ID)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseFilter(c *gin.Context, defaultLimit uint64) (transaction.Filter, error) {
	filter := transaction.Filter{Limit: defaultLimit}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errInvalidDate("from")
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errInvalidDate("to")
		}
		filter.To = &to
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return filter, errInvalidLimit
		}
		if limit < filter.Limit {
			filter.Limit = limit
		}
	}
	return filter, nil
}
