package interfaces

import (
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

// PixelBroadcaster fans a committed placement out to live viewers. Delivery is
// best effort; a failure here must never fail the write that produced it.
type PixelBroadcaster interface {
	BroadcastPlacement(event *models.PlacementEvent, discordUser string) error
}
