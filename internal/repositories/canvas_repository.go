package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

type CanvasRepository struct {
	db *gorm.DB
}

func NewCanvasRepository(db *gorm.DB) *CanvasRepository {
	return &CanvasRepository{
		db: db,
	}
}

func (cr *CanvasRepository) Create(canvas *models.Canvas) (*models.Canvas, error) {
	result := cr.db.Create(canvas)
	if result.Error != nil {
		return nil, result.Error
	}
	return canvas, nil
}

func (cr *CanvasRepository) Update(canvas *models.Canvas) (*models.Canvas, error) {
	result := cr.db.Save(canvas)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrCanvasNotFound
	}
	return canvas, nil
}

func (cr *CanvasRepository) GetByID(id uint) (*models.Canvas, error) {
	var canvas models.Canvas
	result := cr.db.First(&canvas, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCanvasNotFound
		}
		return nil, result.Error
	}
	return &canvas, nil
}

// GetCurrent returns the newest canvas that is neither closed nor expired.
func (cr *CanvasRepository) GetCurrent() (*models.Canvas, error) {
	var canvas models.Canvas
	result := cr.db.
		Where("date_closed IS NULL AND date_expire > ?", time.Now()).
		Order("created_at DESC").
		First(&canvas)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNoActiveCanvas
		}
		return nil, result.Error
	}
	return &canvas, nil
}
