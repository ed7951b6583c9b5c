package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscocavallaro/asado-counter/internal/models"
	"github.com/franciscocavallaro/asado-counter/internal/services"
)

// BarcodeController resolves scanned barcodes to cut suggestions
type BarcodeController interface {
	// GetBarcode looks up one barcode
	GetBarcode(c *gin.Context)
}

type barcodeController struct {
	service services.BarcodeService
}

// NewBarcodeController creates a new instance of BarcodeController
func NewBarcodeController(service services.BarcodeService) *barcodeController {
	return &barcodeController{service: service}
}

// GetBarcode godoc
// @Summary Look up a barcode
// @Description Get the suggested cut for a barcode. A 404 means no
// @Description suggestion is registered, which callers treat as manual entry.
// @Tags barcodes
// @Accept json
// @Produce json
// @Param code path string true "Barcode"
// @Success 200 {object} models.BarcodeMapping
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/barcodes/{code} [get]
func (bc *barcodeController) GetBarcode(ctx *gin.Context) {
	mapping, err := bc.service.LookupBarcode(ctx.Param("code"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrBarcodeLookup, "Barcode lookup failed, try again"))
		return
	}
	if mapping == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrBarcodeNotFound, "No suggestion available for this barcode"))
		return
	}
	ctx.JSON(http.StatusOK, mapping)
}
