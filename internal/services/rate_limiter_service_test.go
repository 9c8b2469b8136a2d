package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

type fakeLedger struct {
	lastPlacement  *time.Time
	lastErr        error
	appended       []*models.PlacementEvent
	appendErr      error
	currentCell    *models.CellState
	currentCellErr error
	cells          []models.CellState
	events         []models.PlacementEvent
}

// Append mirrors the real ledger's contract: the prior color comes from the
// cell projection, which moves to the new color in the same step.
func (fl *fakeLedger) Append(canvasID, userID uint, x, y, color int) (*models.PlacementEvent, error) {
	if fl.appendErr != nil {
		return nil, fl.appendErr
	}

	prior := models.ColorWhite
	found := false
	for i := range fl.cells {
		cell := &fl.cells[i]
		if cell.CanvasID == canvasID && cell.X == x && cell.Y == y {
			prior = cell.Color
			cell.Color = color
			found = true
			break
		}
	}
	if !found {
		fl.cells = append(fl.cells, models.CellState{CanvasID: canvasID, X: x, Y: y, Color: color})
	}

	event := &models.PlacementEvent{
		CanvasID:   canvasID,
		UserID:     userID,
		X:          x,
		Y:          y,
		Color:      color,
		PriorColor: prior,
	}
	event.ID = uint(len(fl.appended) + 1)
	fl.appended = append(fl.appended, event)
	return event, nil
}

func (fl *fakeLedger) CurrentCells(canvasID uint) ([]models.CellState, error) {
	return fl.cells, nil
}

func (fl *fakeLedger) CurrentCell(canvasID uint, x, y int) (*models.CellState, error) {
	return fl.currentCell, fl.currentCellErr
}

func (fl *fakeLedger) EventsBetween(canvasID uint, from, to time.Time) ([]models.PlacementEvent, error) {
	return fl.events, nil
}

func (fl *fakeLedger) EventsUntil(canvasID uint, until time.Time) ([]models.PlacementEvent, error) {
	return fl.events, nil
}

func (fl *fakeLedger) LastPlacementTime(userID uint) (*time.Time, error) {
	return fl.lastPlacement, fl.lastErr
}

func TestCheckAndReserveFirstPlacementAllowed(t *testing.T) {
	limiter := NewRateLimiterService(&fakeLedger{}, time.Minute)

	allowed, retryAfter, err := limiter.CheckAndReserve(1, false)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}

func TestCheckAndReserveDeniesInsideCooldown(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-20 * time.Second)
	limiter := NewRateLimiterService(&fakeLedger{lastPlacement: &last}, time.Minute)
	limiter.now = func() time.Time { return now }

	allowed, retryAfter, err := limiter.CheckAndReserve(1, false)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 40*time.Second, retryAfter)
}

func TestCheckAndReserveAllowsAfterCooldown(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-time.Minute)
	limiter := NewRateLimiterService(&fakeLedger{lastPlacement: &last}, time.Minute)
	limiter.now = func() time.Time { return now }

	allowed, retryAfter, err := limiter.CheckAndReserve(1, false)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}

func TestCheckAndReserveModeratorBypassesCooldown(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-time.Second)
	limiter := NewRateLimiterService(&fakeLedger{lastPlacement: &last}, time.Minute)
	limiter.now = func() time.Time { return now }

	allowed, retryAfter, err := limiter.CheckAndReserve(1, true)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}

func TestCheckAndReservePropagatesLedgerError(t *testing.T) {
	ledgerErr := errors.New("db down")
	limiter := NewRateLimiterService(&fakeLedger{lastErr: ledgerErr}, time.Minute)

	allowed, _, err := limiter.CheckAndReserve(1, false)
	assert.False(t, allowed)
	assert.Equal(t, ledgerErr, err)
}

func TestNewRateLimiterServiceDefaultsCooldown(t *testing.T) {
	limiter := NewRateLimiterService(&fakeLedger{}, 0)
	assert.Equal(t, DefaultCooldown, limiter.cooldown)
}
