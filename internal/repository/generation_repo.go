package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/matisaar/T661-Checker/internal/model"
)

type generationRepository struct {
	db *gorm.DB
}

// NewGenerationRepository creates the generation history repository.
func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) Create(gen *model.Generation) error {
	return r.db.Create(gen).Error
}

// List returns the most recent generations, newest first.
func (r *generationRepository) List(limit int) ([]model.Generation, error) {
	if limit <= 0 {
		limit = 50
	}
	var gens []model.Generation
	err := r.db.Order("id DESC").Limit(limit).Find(&gens).Error
	return gens, err
}

// GetByGenerationID looks up one generation by its UUID; a miss returns
// (nil, nil).
func (r *generationRepository) GetByGenerationID(generationID string) (*model.Generation, error) {
	var gen model.Generation
	err := r.db.Where("generation_id = ?", generationID).First(&gen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gen, nil
}

func (r *generationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Generation{}).Count(&count).Error
	return count, err
}
