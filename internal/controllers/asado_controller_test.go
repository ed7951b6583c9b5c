package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/franciscocavallaro/asado-counter/internal/models"
	"github.com/franciscocavallaro/asado-counter/internal/services"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(
		&models.Cut{}, &models.Guest{},
		&models.Asado{}, &models.AsadoCut{}, &models.AsadoGuest{},
		&models.BarcodeMapping{},
	)
	require.NoError(t, err)

	catalogService := services.NewCatalogService(db)
	asadoController := NewAsadoController(services.NewAsadoService(db, catalogService))
	catalogController := NewCatalogController(catalogService)
	statsController := NewStatsController(services.NewStatsService(db))
	barcodeController := NewBarcodeController(services.NewBarcodeService(db))

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/asados", asadoController.GetAllAsados)
	v1.GET("/asados/:id", asadoController.GetAsadoByID)
	v1.POST("/asados", asadoController.CreateAsado)
	v1.PUT("/asados/:id", asadoController.UpdateAsado)
	v1.DELETE("/asados/:id", asadoController.DeleteAsado)
	v1.GET("/cuts", catalogController.GetCuts)
	v1.GET("/guests", catalogController.GetGuests)
	v1.GET("/wrapped", statsController.GetWrapped)
	v1.GET("/barcodes/:code", barcodeController.GetBarcode)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func validForm() models.AsadoForm {
	return models.AsadoForm{
		Date:   "2024-01-05",
		Title:  "Cumple",
		Rating: 8,
		Cuts: []models.CutInput{
			{Name: "vacío", WeightKg: "1,2"},
			{Name: "asado de tira", WeightKg: "2.0"},
		},
		Guests: []models.GuestInput{{Name: "Ana"}, {Name: "Beto"}},
	}
}

func TestCreateAsadoEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/asados", validForm())
	require.Equal(t, http.StatusCreated, resp.Code)

	var created models.Asado
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "2024-01-05", created.Date)
	assert.Len(t, created.Cuts, 2)
	assert.Len(t, created.Guests, 2)
}

func TestCreateAsadoEndpointRejectsInvalidForm(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/asados", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("no cuts", func(t *testing.T) {
		form := validForm()
		form.Cuts = nil
		resp := doJSON(t, router, http.MethodPost, "/api/v1/asados", form)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		form := validForm()
		form.Rating = 11
		resp := doJSON(t, router, http.MethodPost, "/api/v1/asados", form)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestUpdateAndDeleteAsadoEndpoints(t *testing.T) {
	router, db := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/asados", validForm())
	require.Equal(t, http.StatusCreated, resp.Code)
	var created models.Asado
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	update := validForm()
	update.Cuts = []models.CutInput{{Name: "vacío", WeightKg: "0.8"}}
	update.Guests = nil
	resp = doJSON(t, router, http.MethodPut, "/api/v1/asados/"+created.ID.String(), update)
	require.Equal(t, http.StatusOK, resp.Code)

	var cutRows int64
	require.NoError(t, db.Model(&models.AsadoCut{}).Where("asado_id = ?", created.ID).Count(&cutRows).Error)
	assert.Equal(t, int64(1), cutRows)

	resp = doJSON(t, router, http.MethodDelete, "/api/v1/asados/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, http.MethodDelete, "/api/v1/asados/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetAsadoEndpointInvalidID(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/asados/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestWrappedEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/asados", validForm())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/wrapped?year=2024", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var wrapped struct {
		TotalAsados int             `json:"total_asados"`
		TotalKg     decimal.Decimal `json:"total_kg"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &wrapped))
	assert.Equal(t, 1, wrapped.TotalAsados)
	assert.Equal(t, "3.2", wrapped.TotalKg.String())

	resp = doJSON(t, router, http.MethodGet, "/api/v1/wrapped?year=banana", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBarcodeEndpoint(t *testing.T) {
	router, db := setupRouter(t)

	require.NoError(t, db.Create(&models.BarcodeMapping{
		Barcode:         "7790000000017",
		CutName:         "vacío",
		DefaultWeightKg: decimal.NewFromFloat(1.2),
	}).Error)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/barcodes/7790000000017", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var mapping models.BarcodeMapping
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &mapping))
	assert.Equal(t, "vacío", mapping.CutName)

	// A miss is a 404 with a NOT_FOUND code, not a server failure
	resp = doJSON(t, router, http.MethodGet, "/api/v1/barcodes/0000000000", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrBarcodeNotFound, apiErr.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/asados", validForm())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/cuts", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var cuts []models.Cut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &cuts))
	require.Len(t, cuts, 2)
	assert.Equal(t, "asado de tira", cuts[0].Name)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/guests", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var guests []models.Guest
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &guests))
	assert.Len(t, guests, 2)
}
