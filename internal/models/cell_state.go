package models

// CellState is the derived "current color per cell" projection, one row per
// occupied (canvas, x, y). It always mirrors the latest PlacementEvent for the
// cell and is never authoritative over the ledger.
type CellState struct {
	CanvasID uint `gorm:"primaryKey;autoIncrement:false" json:"canvas_id"`
	X        int  `gorm:"primaryKey;autoIncrement:false" json:"x"`
	Y        int  `gorm:"primaryKey;autoIncrement:false" json:"y"`
	Color    int  `gorm:"not null" json:"color"`
}
