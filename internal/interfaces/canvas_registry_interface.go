package interfaces

import (
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

// CanvasRegistry owns canvas lifecycle rows. Implementations never delete a
// canvas; history has to stay queryable after close or expiry.
type CanvasRegistry interface {
	Create(canvas *models.Canvas) (*models.Canvas, error)
	Update(canvas *models.Canvas) (*models.Canvas, error)
	GetByID(id uint) (*models.Canvas, error)
	GetCurrent() (*models.Canvas, error)
}
