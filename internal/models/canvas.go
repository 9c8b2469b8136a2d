package models

import (
	"time"

	"gorm.io/gorm"
)

// Canvas is the registry row for one shared pixel grid. A canvas is never
// deleted; it leaves the "current" selection by closing or expiring.
type Canvas struct {
	gorm.Model
	Width      int        `gorm:"not null" json:"width"`
	Height     int        `gorm:"not null" json:"height"`
	DateExpire time.Time  `gorm:"not null" json:"-"`
	DateClosed *time.Time `json:"-"`
}

func (canvas *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < canvas.Width && y >= 0 && y < canvas.Height
}

func (canvas *Canvas) ToCanvasResponse() *CanvasResponse {
	var dateClosed *int64
	if canvas.DateClosed != nil {
		closed := canvas.DateClosed.Unix()
		dateClosed = &closed
	}
	return &CanvasResponse{
		ID:          canvas.ID,
		Width:       canvas.Width,
		Height:      canvas.Height,
		DateCreated: canvas.CreatedAt.Unix(),
		DateExpire:  canvas.DateExpire.Unix(),
		DateClosed:  dateClosed,
	}
}

type CanvasResponse struct {
	ID          uint   `json:"id"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	DateCreated int64  `json:"date_created"`
	DateExpire  int64  `json:"date_expire"`
	DateClosed  *int64 `json:"date_closed"`
}

type CreateCanvasRequestBody struct {
	Width      int   `json:"width"`
	Height     int   `json:"height"`
	DateExpire int64 `json:"date_expire"`
}

type UpdateCanvasRequestBody struct {
	Width      *int   `json:"width"`
	Height     *int   `json:"height"`
	DateExpire *int64 `json:"date_expire"`
}
