package interfaces

import (
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

type UserStore interface {
	GetByID(id uint) (*models.User, error)
	GetByDiscordID(discordID string) (*models.User, error)
	Create(user *models.User) (*models.User, error)
	Update(user *models.User) error
	GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, error)
}
