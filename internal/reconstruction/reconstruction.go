// Package reconstruction materializes pixel buffers from ledger rows. All
// builders are pure: they take rows plus a canvas size and return a buffer,
// never touching storage, transport or compression.
package reconstruction

import (
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

type RGB struct {
	R, G, B uint8
}

func RGBFromColor(color int) RGB {
	return RGB{
		R: uint8(color >> 16 & 0xff),
		G: uint8(color >> 8 & 0xff),
		B: uint8(color & 0xff),
	}
}

func (c RGB) Color() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

var (
	White = RGB{R: 0xff, G: 0xff, B: 0xff}
	Black = RGB{}
)

// Buffer is a width*height RGB pixel grid in row-major order.
type Buffer struct {
	Width  int
	Height int
	Pix    []RGB
}

func NewBuffer(width, height int, background RGB) *Buffer {
	pix := make([]RGB, width*height)
	for i := range pix {
		pix[i] = background
	}
	return &Buffer{Width: width, Height: height, Pix: pix}
}

// Set stamps a color at (x, y). Coordinates outside the buffer are dropped
// silently: one corrupt or stale row must not deny the whole reconstruction.
func (b *Buffer) Set(x, y int, c RGB) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = c
}

func (b *Buffer) At(x, y int) RGB {
	return b.Pix[y*b.Width+x]
}

// BuildCurrent renders the live canvas: white background, then the projected
// color of every occupied cell.
func BuildCurrent(width, height int, cells []models.CellState) *Buffer {
	buffer := NewBuffer(width, height, White)
	for _, cell := range cells {
		buffer.Set(cell.X, cell.Y, RGBFromColor(cell.Color))
	}
	return buffer
}

// BuildSnapshot renders the canvas as it stood at some past instant. The
// caller supplies the latest event per cell up to that instant; cells never
// written by then stay white.
func BuildSnapshot(width, height int, events []models.PlacementEvent) *Buffer {
	buffer := NewBuffer(width, height, White)
	for _, event := range events {
		buffer.Set(event.X, event.Y, RGBFromColor(event.Color))
	}
	return buffer
}

// BuildHeatmap renders where activity happened in a time window: black
// background, override color at every event coordinate. Repeated writes to a
// cell re-stamp the same color, so the result encodes membership, not density.
func BuildHeatmap(width, height int, events []models.PlacementEvent, overrideColor int) *Buffer {
	buffer := NewBuffer(width, height, Black)
	stamp := RGBFromColor(overrideColor)
	for _, event := range events {
		buffer.Set(event.X, event.Y, stamp)
	}
	return buffer
}
