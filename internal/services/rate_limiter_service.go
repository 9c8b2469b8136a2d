package services

import (
	"time"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/interfaces"
)

// DefaultCooldown is the minimum interval between one user's placements.
const DefaultCooldown = time.Minute

// RateLimiterService gates placements on the user's last ledger timestamp.
// The check is advisory: two racing requests from the same user may both pass
// it, which the service tolerates by design. Moderators always pass.
type RateLimiterService struct {
	ledger   interfaces.PixelLedger
	cooldown time.Duration
	now      func() time.Time
}

func NewRateLimiterService(ledger interfaces.PixelLedger, cooldown time.Duration) *RateLimiterService {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &RateLimiterService{
		ledger:   ledger,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// CheckAndReserve reports whether the user may place now; when denied it also
// returns how long to wait before retrying.
func (rl *RateLimiterService) CheckAndReserve(userID uint, isModerator bool) (bool, time.Duration, error) {
	if isModerator {
		return true, 0, nil
	}

	last, err := rl.ledger.LastPlacementTime(userID)
	if err != nil {
		return false, 0, err
	}
	if last == nil {
		return true, 0, nil
	}

	readyAt := last.Add(rl.cooldown)
	now := rl.now()
	if now.Before(readyAt) {
		return false, readyAt.Sub(now), nil
	}
	return true, 0, nil
}
