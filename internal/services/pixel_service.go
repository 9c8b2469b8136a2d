package services

import (
	"log"
	"time"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/interfaces"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/utils"
)

type PixelService struct {
	pixelRepo   interfaces.PixelLedger
	canvasRepo  interfaces.CanvasRegistry
	userRepo    interfaces.UserStore
	rateLimiter *RateLimiterService
	broadcaster interfaces.PixelBroadcaster
}

func NewPixelService(
	pixelRepo interfaces.PixelLedger,
	canvasRepo interfaces.CanvasRegistry,
	userRepo interfaces.UserStore,
	rateLimiter *RateLimiterService,
	broadcaster interfaces.PixelBroadcaster,
) *PixelService {
	return &PixelService{
		pixelRepo:   pixelRepo,
		canvasRepo:  canvasRepo,
		userRepo:    userRepo,
		rateLimiter: rateLimiter,
		broadcaster: broadcaster,
	}
}

// PlacePixel runs the full write path: ban gate, cooldown, bounds, ledger
// append, then best-effort broadcast. The broadcast only happens after the
// append commits; an append failure aborts the request so viewers never see a
// pixel the ledger does not hold.
func (ps *PixelService) PlacePixel(userID uint, body *models.SetPixelRequestBody) (*models.PlacementEvent, time.Duration, []error) {
	user, err := ps.userRepo.GetByID(userID)
	if err != nil {
		return nil, 0, []error{err}
	}
	if user.Banned {
		return nil, 0, []error{errs.ErrUserBanned}
	}

	color, err := utils.HexToColor(body.Color)
	if err != nil {
		return nil, 0, []error{err}
	}

	allowed, retryAfter, err := ps.rateLimiter.CheckAndReserve(user.ID, user.Moderator)
	if err != nil {
		return nil, 0, []error{err}
	}
	if !allowed {
		return nil, retryAfter, []error{errs.ErrRateLimited}
	}

	canvas, err := ps.canvasRepo.GetCurrent()
	if err != nil {
		return nil, 0, []error{err}
	}
	if !canvas.Contains(body.X, body.Y) {
		return nil, 0, []error{errs.ErrPixelOutOfBounds}
	}

	event, err := ps.pixelRepo.Append(canvas.ID, user.ID, body.X, body.Y, color)
	if err != nil {
		return nil, 0, []error{err}
	}

	if broadcastErr := ps.broadcaster.BroadcastPlacement(event, user.DiscordID); broadcastErr != nil {
		// Fan-out is fire and forget; the placement already committed.
		log.Printf("Error broadcasting placement %d: %v", event.ID, broadcastErr)
	}

	return event, 0, nil
}

// GetPixel reads one cell of the current canvas, defaulting to white for a
// cell no one has written yet.
func (ps *PixelService) GetPixel(x, y int) (*models.PixelResponse, []error) {
	canvas, err := ps.canvasRepo.GetCurrent()
	if err != nil {
		return nil, []error{err}
	}
	if !canvas.Contains(x, y) {
		return nil, []error{errs.ErrPixelOutOfBounds}
	}

	cell, err := ps.pixelRepo.CurrentCell(canvas.ID, x, y)
	if err != nil {
		if err == errs.ErrPixelNotFound {
			return &models.PixelResponse{X: x, Y: y, Color: utils.ColorToHex(models.ColorWhite)}, nil
		}
		return nil, []error{err}
	}

	return &models.PixelResponse{X: cell.X, Y: cell.Y, Color: utils.ColorToHex(cell.Color)}, nil
}
