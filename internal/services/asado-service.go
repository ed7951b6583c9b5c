package services

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/franciscocavallaro/asado-counter/internal/models"
)

// AsadoService provides methods to manage barbecue events
type AsadoService interface {
	// GetAllAsados retrieves all asados with their cuts and guests,
	// newest first
	GetAllAsados() ([]models.Asado, error)
	// GetAsadoByID retrieves a single asado with its relations
	GetAsadoByID(id uuid.UUID) (models.Asado, error)
	// CreateAsado persists a new asado and its joins from a form draft
	CreateAsado(form models.AsadoForm) (models.Asado, error)
	// UpdateAsado updates the asado row and fully replaces its cut and
	// guest sets (delete-then-reinsert, not incremental diffing)
	UpdateAsado(id uuid.UUID, form models.AsadoForm) (models.Asado, error)
	// DeleteAsado removes an asado and its join rows
	DeleteAsado(id uuid.UUID) error
}

// asadoService is the implementation of the AsadoService interface
type asadoService struct {
	db      *gorm.DB
	catalog CatalogService
}

// NewAsadoService creates a new instance of AsadoService
func NewAsadoService(db *gorm.DB, catalog CatalogService) AsadoService {
	return &asadoService{db: db, catalog: catalog}
}

func (s *asadoService) GetAllAsados() ([]models.Asado, error) {
	var asados []models.Asado
	err := s.db.
		Preload("Cuts.Cut").
		Preload("Guests.Guest").
		Order("date DESC").
		Find(&asados).Error
	if err != nil {
		return nil, err
	}
	return asados, nil
}

func (s *asadoService) GetAsadoByID(id uuid.UUID) (models.Asado, error) {
	var asado models.Asado
	err := s.db.
		Preload("Cuts.Cut").
		Preload("Guests.Guest").
		First(&asado, "id = ?", id).Error
	if err != nil {
		return models.Asado{}, err
	}
	return asado, nil
}

func (s *asadoService) CreateAsado(form models.AsadoForm) (models.Asado, error) {
	if err := checkForm(form); err != nil {
		return models.Asado{}, err
	}

	asado := models.Asado{
		Date:   form.Date,
		Title:  form.TitleOrNil(),
		Rating: form.Rating,
	}
	if err := s.db.Create(&asado).Error; err != nil {
		return models.Asado{}, err
	}

	if err := s.insertJoins(asado.ID, form); err != nil {
		return models.Asado{}, err
	}

	return s.GetAsadoByID(asado.ID)
}

func (s *asadoService) UpdateAsado(id uuid.UUID, form models.AsadoForm) (models.Asado, error) {
	if err := checkForm(form); err != nil {
		return models.Asado{}, err
	}

	var asado models.Asado
	if err := s.db.First(&asado, "id = ?", id).Error; err != nil {
		return models.Asado{}, err
	}

	updates := map[string]interface{}{
		"date":   form.Date,
		"title":  form.TitleOrNil(),
		"rating": form.Rating,
	}
	if err := s.db.Model(&asado).Updates(updates).Error; err != nil {
		return models.Asado{}, err
	}

	// Full replacement of both join sets
	if err := s.db.Where("asado_id = ?", id).Delete(&models.AsadoCut{}).Error; err != nil {
		return models.Asado{}, &PartialWriteError{AsadoID: id, Step: "delete cuts", Err: err}
	}
	if err := s.db.Where("asado_id = ?", id).Delete(&models.AsadoGuest{}).Error; err != nil {
		return models.Asado{}, &PartialWriteError{AsadoID: id, Step: "delete guests", Err: err}
	}

	if err := s.insertJoins(id, form); err != nil {
		return models.Asado{}, err
	}

	return s.GetAsadoByID(id)
}

func (s *asadoService) DeleteAsado(id uuid.UUID) error {
	result := s.db.Select(clause.Associations).Delete(&models.Asado{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// insertJoins resolves each cut and guest name and inserts the join rows.
// A failure partway through leaves prior writes in place; the error is
// wrapped so callers can tell the intermediate state from a plain
// persistence failure.
func (s *asadoService) insertJoins(asadoID uuid.UUID, form models.AsadoForm) error {
	for _, cutInput := range form.Cuts {
		cut, err := s.catalog.GetOrCreateCut(cutInput.Name)
		if err != nil {
			return &PartialWriteError{AsadoID: asadoID, Step: "resolve cut", Err: err}
		}
		weight, err := cutInput.ParseWeight()
		if err != nil {
			return &PartialWriteError{AsadoID: asadoID, Step: "parse weight", Err: err}
		}
		join := models.AsadoCut{AsadoID: asadoID, CutID: cut.ID, WeightKg: weight}
		if err := s.db.Create(&join).Error; err != nil {
			log.WithField("asado_id", asadoID).WithError(err).Error("Failed to insert asado cut")
			return &PartialWriteError{AsadoID: asadoID, Step: "insert cut", Err: err}
		}
	}

	for _, guestInput := range form.Guests {
		guest, err := s.catalog.GetOrCreateGuest(guestInput.Name)
		if err != nil {
			return &PartialWriteError{AsadoID: asadoID, Step: "resolve guest", Err: err}
		}
		join := models.AsadoGuest{AsadoID: asadoID, GuestID: guest.ID}
		if err := s.db.Create(&join).Error; err != nil {
			log.WithField("asado_id", asadoID).WithError(err).Error("Failed to insert asado guest")
			return &PartialWriteError{AsadoID: asadoID, Step: "insert guest", Err: err}
		}
	}

	return nil
}

// checkForm blocks submission before any persistence call is made
func checkForm(form models.AsadoForm) error {
	if !hasValidCut(form) {
		return ErrNoValidCuts
	}
	if len(form.Validate()) > 0 {
		return ErrInvalidForm
	}
	return nil
}

// hasValidCut reports whether at least one cut parses to a positive weight
func hasValidCut(form models.AsadoForm) bool {
	for _, cut := range form.Cuts {
		weight, err := cut.ParseWeight()
		if err == nil && weight.IsPositive() {
			return true
		}
	}
	return false
}
