package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/reconstruction"
)

func TestCanvasCreateValidates(t *testing.T) {
	service := NewCanvasService(&fakeCanvasRegistry{}, &fakeLedger{})

	_, errors := service.Create(&models.CreateCanvasRequestBody{
		Width:      100,
		Height:     100,
		DateExpire: time.Now().Add(time.Minute).Unix(),
	})
	assert.Contains(t, errors, errs.ErrCanvasTooSmall)
	assert.Contains(t, errors, errs.ErrExpiryTooSoon)
}

func TestCanvasCreateSucceeds(t *testing.T) {
	service := NewCanvasService(&fakeCanvasRegistry{}, &fakeLedger{})

	expire := time.Now().Add(2 * time.Hour).Unix()
	canvas, errors := service.Create(&models.CreateCanvasRequestBody{
		Width:      500,
		Height:     400,
		DateExpire: expire,
	})
	require.Empty(t, errors)
	assert.Equal(t, 500, canvas.Width)
	assert.Equal(t, 400, canvas.Height)
	assert.Equal(t, expire, canvas.DateExpire.Unix())
}

func TestCanvasUpdateAppliesOnlySuppliedFields(t *testing.T) {
	registry := &fakeCanvasRegistry{current: testCanvas()}
	service := NewCanvasService(registry, &fakeLedger{})

	width := 640
	canvas, errors := service.Update(1, &models.UpdateCanvasRequestBody{Width: &width})
	require.Empty(t, errors)
	assert.Equal(t, 640, canvas.Width)
	assert.Equal(t, 300, canvas.Height)
}

func TestCanvasUpdateRejectsShrinkBelowMinimum(t *testing.T) {
	registry := &fakeCanvasRegistry{current: testCanvas()}
	service := NewCanvasService(registry, &fakeLedger{})

	width := 100
	_, errors := service.Update(1, &models.UpdateCanvasRequestBody{Width: &width})
	assert.Contains(t, errors, errs.ErrCanvasTooSmall)
}

func TestCanvasCloseIsOneShot(t *testing.T) {
	registry := &fakeCanvasRegistry{current: testCanvas()}
	service := NewCanvasService(registry, &fakeLedger{})

	closed, errors := service.Close(1)
	require.Empty(t, errors)
	require.NotNil(t, closed.DateClosed)

	_, errors = service.Close(1)
	assert.Contains(t, errors, errs.ErrCanvasClosed)
}

func TestRenderCurrentUsesProjection(t *testing.T) {
	ledger := &fakeLedger{cells: []models.CellState{{X: 1, Y: 1, Color: 0xff0000}}}
	service := NewCanvasService(&fakeCanvasRegistry{current: testCanvas()}, ledger)

	buffer, errors := service.RenderCurrent(testCanvas())
	require.Empty(t, errors)
	assert.Equal(t, reconstruction.RGB{R: 0xff}, buffer.At(1, 1))
	assert.Equal(t, reconstruction.White, buffer.At(0, 0))
}

func TestRenderHeatmapRejectsInvalidRange(t *testing.T) {
	service := NewCanvasService(&fakeCanvasRegistry{current: testCanvas()}, &fakeLedger{})

	now := time.Now()
	_, errors := service.RenderHeatmap(testCanvas(), now, now, models.DefaultHeatmapColor)
	assert.Contains(t, errors, errs.ErrInvalidTimeRange)
}

func TestRenderHeatmapStampsOverrideColor(t *testing.T) {
	ledger := &fakeLedger{events: []models.PlacementEvent{{X: 2, Y: 2, Color: 0x00ff00}}}
	service := NewCanvasService(&fakeCanvasRegistry{current: testCanvas()}, ledger)

	now := time.Now()
	buffer, errors := service.RenderHeatmap(testCanvas(), now.Add(-time.Hour), now, 0xff00ff)
	require.Empty(t, errors)
	assert.Equal(t, reconstruction.RGB{R: 0xff, B: 0xff}, buffer.At(2, 2))
	assert.Equal(t, reconstruction.Black, buffer.At(0, 0))
}
