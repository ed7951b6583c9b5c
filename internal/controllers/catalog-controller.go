package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscocavallaro/asado-counter/internal/models"
	"github.com/franciscocavallaro/asado-counter/internal/services"
)

// CatalogController exposes the cut and guest vocabularies
type CatalogController interface {
	// GetCuts retrieves all cuts ordered by name
	GetCuts(c *gin.Context)
	// GetGuests retrieves all guests ordered by name
	GetGuests(c *gin.Context)
}

type catalogController struct {
	service services.CatalogService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(service services.CatalogService) *catalogController {
	return &catalogController{service: service}
}

// GetCuts godoc
// @Summary Get all cuts
// @Description Get the meat cut vocabulary ordered by name
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Cut
// @Failure 500 {object} models.APIError
// @Router /api/v1/cuts [get]
func (cc *catalogController) GetCuts(ctx *gin.Context) {
	cuts, err := cc.service.ListCuts()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve cuts"))
		return
	}
	ctx.JSON(http.StatusOK, cuts)
}

// GetGuests godoc
// @Summary Get all guests
// @Description Get the guest vocabulary ordered by name
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Guest
// @Failure 500 {object} models.APIError
// @Router /api/v1/guests [get]
func (cc *catalogController) GetGuests(ctx *gin.Context) {
	guests, err := cc.service.ListGuests()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve guests"))
		return
	}
	ctx.JSON(http.StatusOK, guests)
}
