package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

type PixelRepository struct {
	db *gorm.DB
}

func NewPixelRepository(db *gorm.DB) *PixelRepository {
	return &PixelRepository{
		db: db,
	}
}

// Append records one placement: it captures the cell's prior color, inserts
// the immutable ledger row and moves the projection to the new color, all in
// one transaction. The projection row is materialized first (white, no-op on
// conflict) so the FOR UPDATE lock always has a target and two writers to the
// same cell serialize against each other.
func (pr *PixelRepository) Append(canvasID, userID uint, x, y, color int) (*models.PlacementEvent, error) {
	var event *models.PlacementEvent

	transactionErr := pr.db.Transaction(func(tx *gorm.DB) error {
		seed := models.CellState{CanvasID: canvasID, X: x, Y: y, Color: models.ColorWhite}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return err
		}

		var cell models.CellState
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("canvas_id = ? AND x = ? AND y = ?", canvasID, x, y).
			First(&cell).Error; err != nil {
			return err
		}

		event = &models.PlacementEvent{
			CanvasID:   canvasID,
			UserID:     userID,
			X:          x,
			Y:          y,
			Color:      color,
			PriorColor: cell.Color,
		}
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		return tx.Model(&models.CellState{}).
			Where("canvas_id = ? AND x = ? AND y = ?", canvasID, x, y).
			Update("color", color).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	return event, nil
}

func (pr *PixelRepository) CurrentCells(canvasID uint) ([]models.CellState, error) {
	var cells []models.CellState
	result := pr.db.Where("canvas_id = ?", canvasID).Find(&cells)
	if result.Error != nil {
		return nil, result.Error
	}
	return cells, nil
}

func (pr *PixelRepository) CurrentCell(canvasID uint, x, y int) (*models.CellState, error) {
	var cell models.CellState
	result := pr.db.
		Where("canvas_id = ? AND x = ? AND y = ?", canvasID, x, y).
		First(&cell)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPixelNotFound
		}
		return nil, result.Error
	}
	return &cell, nil
}

// EventsBetween returns every ledger row in [from, to) in commit order.
func (pr *PixelRepository) EventsBetween(canvasID uint, from, to time.Time) ([]models.PlacementEvent, error) {
	var events []models.PlacementEvent
	result := pr.db.
		Where("canvas_id = ? AND created_at >= ? AND created_at < ?", canvasID, from, to).
		Order("created_at ASC, id ASC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

// EventsUntil returns, per cell, the latest event with a timestamp at or
// before the given instant. Cells never written by then are absent.
func (pr *PixelRepository) EventsUntil(canvasID uint, until time.Time) ([]models.PlacementEvent, error) {
	var events []models.PlacementEvent
	result := pr.db.Raw(
		`SELECT DISTINCT ON (x, y) * FROM placement_events
		 WHERE canvas_id = ? AND created_at <= ? AND deleted_at IS NULL
		 ORDER BY x, y, created_at DESC, id DESC`,
		canvasID, until,
	).Scan(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (pr *PixelRepository) LastPlacementTime(userID uint) (*time.Time, error) {
	var event models.PlacementEvent
	result := pr.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &event.CreatedAt, nil
}
