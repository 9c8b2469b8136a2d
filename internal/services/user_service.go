package services

import (
	"log"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/interfaces"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

type UserService struct {
	userRepo interfaces.UserStore
}

func NewUserService(userRepo interfaces.UserStore) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// BanUser bans the target user. Banning revokes moderator status; moderators
// cannot ban themselves. Returns whether the target was already banned.
func (us *UserService) BanUser(sourceDiscordID, targetDiscordID string) (bool, []error) {
	source, err := us.userRepo.GetByDiscordID(sourceDiscordID)
	if err != nil {
		return false, []error{err}
	}
	if !source.Moderator {
		return false, []error{errs.ErrNotModerator}
	}

	target, err := us.userRepo.GetByDiscordID(targetDiscordID)
	if err != nil {
		return false, []error{err}
	}
	if target.DiscordID == sourceDiscordID {
		return false, []error{errs.ErrCannotBanSelf}
	}

	if target.Banned {
		return true, nil
	}

	target.Banned = true
	target.Moderator = false
	if err := us.userRepo.Update(target); err != nil {
		return false, []error{err}
	}
	return false, nil
}

func (us *UserService) UnbanUser(sourceDiscordID, targetDiscordID string) []error {
	source, err := us.userRepo.GetByDiscordID(sourceDiscordID)
	if err != nil {
		return []error{err}
	}
	if !source.Moderator {
		return []error{errs.ErrNotModerator}
	}

	target, err := us.userRepo.GetByDiscordID(targetDiscordID)
	if err != nil {
		return []error{err}
	}
	if !target.Banned {
		return nil
	}

	target.Banned = false
	if err := us.userRepo.Update(target); err != nil {
		return []error{err}
	}
	return nil
}

func (us *UserService) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	if page < 0 || size < 0 {
		log.Println("Page or size < 0")
		return nil, []error{errs.ErrInvalidPageOrSize}
	}
	response, err := us.userRepo.GetAllUsersWithPagination(page, size)
	if err != nil {
		return nil, []error{err}
	}
	return response, nil
}

// IsModerator resolves a caller's current moderator flag from storage rather
// than trusting the possibly stale token claim.
func (us *UserService) IsModerator(discordID string) (bool, []error) {
	user, err := us.userRepo.GetByDiscordID(discordID)
	if err != nil {
		return false, []error{err}
	}
	return user.Moderator, nil
}
