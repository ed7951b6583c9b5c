package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franciscocavallaro/asado-counter/internal/models"
	"github.com/franciscocavallaro/asado-counter/internal/services"
)

// AsadoController handles HTTP requests related to asados
type AsadoController interface {
	// GetAllAsados retrieves all asados with relations
	GetAllAsados(c *gin.Context)
	// GetAsadoByID retrieves an asado by its ID
	GetAsadoByID(c *gin.Context)
	// CreateAsado creates a new asado from a form payload
	CreateAsado(c *gin.Context)
	// UpdateAsado replaces an asado and its cut/guest sets
	UpdateAsado(c *gin.Context)
	// DeleteAsado deletes an asado by its ID
	DeleteAsado(c *gin.Context)
}

type asadoController struct {
	service services.AsadoService
}

// NewAsadoController creates a new instance of AsadoController
func NewAsadoController(service services.AsadoService) *asadoController {
	return &asadoController{service: service}
}

// GetAllAsados godoc
// @Summary Get all asados
// @Description Get all asados with their cuts and guests, newest first
// @Tags asados
// @Accept json
// @Produce json
// @Success 200 {array} models.Asado
// @Failure 500 {object} models.APIError
// @Router /api/v1/asados [get]
func (ac *asadoController) GetAllAsados(ctx *gin.Context) {
	asados, err := ac.service.GetAllAsados()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve asados"))
		return
	}
	ctx.JSON(http.StatusOK, asados)
}

// GetAsadoByID godoc
// @Summary Get asado by ID
// @Description Get a single asado with its cuts and guests
// @Tags asados
// @Accept json
// @Produce json
// @Param id path string true "Asado ID"
// @Success 200 {object} models.Asado
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/asados/{id} [get]
func (ac *asadoController) GetAsadoByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid asado ID format"))
		return
	}

	asado, err := ac.service.GetAsadoByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrAsadoNotFound, "Asado not found"))
		return
	}
	ctx.JSON(http.StatusOK, asado)
}

// CreateAsado godoc
// @Summary Create a new asado
// @Description Create an asado with its cuts and guests from a form payload
// @Tags asados
// @Accept json
// @Produce json
// @Param asado body models.AsadoForm true "Asado form"
// @Success 201 {object} models.Asado
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/asados [post]
func (ac *asadoController) CreateAsado(ctx *gin.Context) {
	var form models.AsadoForm
	if !bindAndValidate(ctx, &form) {
		return
	}
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrAsadoInvalidData, "Invalid asado data", toDetails(fieldErrs)))
		return
	}

	asado, err := ac.service.CreateAsado(form)
	if err != nil {
		writeAsadoError(ctx, err, "Failed to create asado")
		return
	}
	ctx.JSON(http.StatusCreated, asado)
}

// UpdateAsado godoc
// @Summary Update an asado
// @Description Update the asado row and fully replace its cut and guest sets
// @Tags asados
// @Accept json
// @Produce json
// @Param id path string true "Asado ID"
// @Param asado body models.AsadoForm true "Asado form"
// @Success 200 {object} models.Asado
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/asados/{id} [put]
func (ac *asadoController) UpdateAsado(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid asado ID format"))
		return
	}

	var form models.AsadoForm
	if !bindAndValidate(ctx, &form) {
		return
	}
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrAsadoInvalidData, "Invalid asado data", toDetails(fieldErrs)))
		return
	}

	asado, err := ac.service.UpdateAsado(id, form)
	if err != nil {
		writeAsadoError(ctx, err, "Failed to update asado")
		return
	}
	ctx.JSON(http.StatusOK, asado)
}

// DeleteAsado godoc
// @Summary Delete an asado
// @Description Delete an asado and its join rows
// @Tags asados
// @Accept json
// @Produce json
// @Param id path string true "Asado ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/asados/{id} [delete]
func (ac *asadoController) DeleteAsado(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid asado ID format"))
		return
	}

	if err := ac.service.DeleteAsado(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrAsadoNotFound, "Asado not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete asado"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// writeAsadoError maps service errors to the right status and code
func writeAsadoError(ctx *gin.Context, err error, fallback string) {
	var partial *services.PartialWriteError
	switch {
	case errors.Is(err, services.ErrNoValidCuts):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrAsadoNoValidCuts, "At least one cut with a positive weight is required"))
	case errors.Is(err, services.ErrInvalidForm):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrAsadoInvalidData, "Invalid asado data"))
	case errors.As(err, &partial):
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrPartialWrite, "Asado was partially saved", map[string]interface{}{
			"asado_id": partial.AsadoID.String(),
			"step":     partial.Step,
		}))
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrAsadoNotFound, "Asado not found"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, fallback))
	}
}

func toDetails(fieldErrs map[string]string) map[string]interface{} {
	details := make(map[string]interface{}, len(fieldErrs))
	for field, msg := range fieldErrs {
		details[field] = msg
	}
	return details
}
