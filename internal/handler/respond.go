package handler

import (
	"errors"
	"net/http"
	"strconv"

	"kas-taruna/internal/ledger"
	"kas-taruna/internal/service"
	"kas-taruna/internal/wheel"

	"github.com/gin-gonic/gin"
)

// fail maps service errors to HTTP statuses. Store failures stay 500;
// the client recovers by refetching.
func fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wheel.ErrNoMembers):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// monthRange reads the report/grid period from query params, keeping
// the app's usual default period when a value is absent or not a real
// calendar month.
func monthRange(c *gin.Context) (start, end ledger.MonthYear) {
	start = ledger.MonthYear{Month: 7, Year: 2025}
	end = ledger.MonthYear{Month: 11, Year: 2025}
	if v, err := strconv.Atoi(c.Query("start_month")); err == nil && v >= 1 && v <= 12 {
		start.Month = v
	}
	if v, err := strconv.Atoi(c.Query("start_year")); err == nil && v > 0 {
		start.Year = v
	}
	if v, err := strconv.Atoi(c.Query("end_month")); err == nil && v >= 1 && v <= 12 {
		end.Month = v
	}
	if v, err := strconv.Atoi(c.Query("end_year")); err == nil && v > 0 {
		end.Year = v
	}
	return start, end
}
