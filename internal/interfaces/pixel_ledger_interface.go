package interfaces

import (
	"time"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

// PixelLedger is the append-only store of placement events plus its derived
// current-cell projection. Append must capture the prior color and commit the
// event and projection update atomically per cell.
type PixelLedger interface {
	Append(canvasID, userID uint, x, y, color int) (*models.PlacementEvent, error)
	CurrentCells(canvasID uint) ([]models.CellState, error)
	CurrentCell(canvasID uint, x, y int) (*models.CellState, error)
	EventsBetween(canvasID uint, from, to time.Time) ([]models.PlacementEvent, error)
	EventsUntil(canvasID uint, until time.Time) ([]models.PlacementEvent, error)
	LastPlacementTime(userID uint) (*time.Time, error)
}
