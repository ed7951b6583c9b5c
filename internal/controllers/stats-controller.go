package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/franciscocavallaro/asado-counter/internal/models"
	"github.com/franciscocavallaro/asado-counter/internal/services"
)

// StatsController exposes the yearly Wrapped summary
type StatsController interface {
	// GetWrapped retrieves the aggregated stats for a year
	GetWrapped(c *gin.Context)
}

type statsController struct {
	service services.StatsService
}

// NewStatsController creates a new instance of StatsController
func NewStatsController(service services.StatsService) *statsController {
	return &statsController{service: service}
}

// GetWrapped godoc
// @Summary Get yearly wrapped stats
// @Description Get totals, averages and rankings for a calendar year
// @Tags stats
// @Accept json
// @Produce json
// @Param year query int false "Calendar year (defaults to current year)"
// @Success 200 {object} stats.Wrapped
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/wrapped [get]
func (sc *statsController) GetWrapped(ctx *gin.Context) {
	year := time.Now().Year()
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid year"))
			return
		}
		year = parsed
	}

	wrapped, err := sc.service.GetWrapped(year)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to compute stats"))
		return
	}
	ctx.JSON(http.StatusOK, wrapped)
}
