package models

import (
	"gorm.io/gorm"
)

// PlacementEvent is one row of the append-only pixel ledger. Rows are never
// updated or deleted after insertion; CreatedAt is the placement timestamp.
// PriorColor records what the cell showed immediately before this write,
// white for a cell that had never been written.
type PlacementEvent struct {
	gorm.Model
	CanvasID   uint `gorm:"not null;index:idx_events_canvas_time" json:"canvas_id"`
	UserID     uint `gorm:"not null;index" json:"user_id"`
	X          int  `gorm:"not null" json:"x"`
	Y          int  `gorm:"not null" json:"y"`
	Color      int  `gorm:"not null" json:"color"`
	PriorColor int  `gorm:"not null" json:"prior_color"`
}

// ColorWhite is the implicit color of a cell no event has touched yet.
const ColorWhite = 0xffffff

// DefaultHeatmapColor is the stamp color for activity heatmaps.
const DefaultHeatmapColor = 0xff0000
