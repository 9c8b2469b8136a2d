package services

import (
	"time"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/interfaces"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/reconstruction"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/utils"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/validators"
)

type CanvasService struct {
	canvasRepo interfaces.CanvasRegistry
	pixelRepo  interfaces.PixelLedger
}

func NewCanvasService(canvasRepo interfaces.CanvasRegistry, pixelRepo interfaces.PixelLedger) *CanvasService {
	return &CanvasService{
		canvasRepo: canvasRepo,
		pixelRepo:  pixelRepo,
	}
}

func (cs *CanvasService) Create(body *models.CreateCanvasRequestBody) (*models.Canvas, []error) {
	var errors []error

	expireAt := utils.UnixToTime(body.DateExpire)
	errors = append(errors, validators.ValidateCanvasSize(body.Width, body.Height)...)
	errors = append(errors, validators.ValidateCanvasExpiry(expireAt, time.Now())...)
	if len(errors) > 0 {
		return nil, errors
	}

	canvas := &models.Canvas{
		Width:      body.Width,
		Height:     body.Height,
		DateExpire: expireAt,
	}
	created, err := cs.canvasRepo.Create(canvas)
	if err != nil {
		return nil, []error{err}
	}
	return created, nil
}

// Update applies only the supplied fields, validating each the same way as
// Create.
func (cs *CanvasService) Update(id uint, body *models.UpdateCanvasRequestBody) (*models.Canvas, []error) {
	var errors []error

	canvas, err := cs.canvasRepo.GetByID(id)
	if err != nil {
		return nil, []error{err}
	}

	width := canvas.Width
	height := canvas.Height
	if body.Width != nil {
		width = *body.Width
	}
	if body.Height != nil {
		height = *body.Height
	}
	if body.Width != nil || body.Height != nil {
		errors = append(errors, validators.ValidateCanvasSize(width, height)...)
	}

	expireAt := canvas.DateExpire
	if body.DateExpire != nil {
		expireAt = utils.UnixToTime(*body.DateExpire)
		errors = append(errors, validators.ValidateCanvasExpiry(expireAt, time.Now())...)
	}

	if len(errors) > 0 {
		return nil, errors
	}

	canvas.Width = width
	canvas.Height = height
	canvas.DateExpire = expireAt

	updated, err := cs.canvasRepo.Update(canvas)
	if err != nil {
		return nil, []error{err}
	}
	return updated, nil
}

// Close retires a canvas from the current selection without deleting anything.
func (cs *CanvasService) Close(id uint) (*models.Canvas, []error) {
	canvas, err := cs.canvasRepo.GetByID(id)
	if err != nil {
		return nil, []error{err}
	}
	if canvas.DateClosed != nil {
		return nil, []error{errs.ErrCanvasClosed}
	}

	now := time.Now()
	canvas.DateClosed = &now
	updated, err := cs.canvasRepo.Update(canvas)
	if err != nil {
		return nil, []error{err}
	}
	return updated, nil
}

func (cs *CanvasService) GetByID(id uint) (*models.Canvas, []error) {
	canvas, err := cs.canvasRepo.GetByID(id)
	if err != nil {
		return nil, []error{err}
	}
	return canvas, nil
}

func (cs *CanvasService) GetCurrent() (*models.Canvas, []error) {
	canvas, err := cs.canvasRepo.GetCurrent()
	if err != nil {
		return nil, []error{err}
	}
	return canvas, nil
}

// RenderCurrent materializes the live image of a canvas from the projection.
func (cs *CanvasService) RenderCurrent(canvas *models.Canvas) (*reconstruction.Buffer, []error) {
	cells, err := cs.pixelRepo.CurrentCells(canvas.ID)
	if err != nil {
		return nil, []error{err}
	}
	return reconstruction.BuildCurrent(canvas.Width, canvas.Height, cells), nil
}

// RenderSnapshot materializes the canvas as it stood at the given instant.
func (cs *CanvasService) RenderSnapshot(canvas *models.Canvas, until time.Time) (*reconstruction.Buffer, []error) {
	events, err := cs.pixelRepo.EventsUntil(canvas.ID, until)
	if err != nil {
		return nil, []error{err}
	}
	return reconstruction.BuildSnapshot(canvas.Width, canvas.Height, events), nil
}

// RenderHeatmap materializes activity in [from, to) with the override color.
func (cs *CanvasService) RenderHeatmap(canvas *models.Canvas, from, to time.Time, overrideColor int) (*reconstruction.Buffer, []error) {
	if validationErrs := validators.ValidateTimeRange(from, to); len(validationErrs) > 0 {
		return nil, validationErrs
	}
	events, err := cs.pixelRepo.EventsBetween(canvas.ID, from, to)
	if err != nil {
		return nil, []error{err}
	}
	return reconstruction.BuildHeatmap(canvas.Width, canvas.Height, events, overrideColor), nil
}
