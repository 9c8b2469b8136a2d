package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/codec"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/interfaces"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/reconstruction"
)

// ArchiveService renders a canvas and stores the image in object storage, so
// closed canvases keep a browsable final picture next to their ledger history.
type ArchiveService struct {
	canvasRepo  interfaces.CanvasRegistry
	pixelRepo   interfaces.PixelLedger
	fileManager *FileManagerService
}

func NewArchiveService(
	canvasRepo interfaces.CanvasRegistry,
	pixelRepo interfaces.PixelLedger,
	fileManager *FileManagerService,
) *ArchiveService {
	return &ArchiveService{
		canvasRepo:  canvasRepo,
		pixelRepo:   pixelRepo,
		fileManager: fileManager,
	}
}

// ArchiveCanvas uploads the current rendering of the canvas and returns its
// public URL.
func (as *ArchiveService) ArchiveCanvas(canvasID uint) (string, []error) {
	canvas, err := as.canvasRepo.GetByID(canvasID)
	if err != nil {
		return "", []error{err}
	}

	cells, err := as.pixelRepo.CurrentCells(canvas.ID)
	if err != nil {
		return "", []error{err}
	}

	buffer := reconstruction.BuildCurrent(canvas.Width, canvas.Height, cells)
	encoded, err := codec.EncodePNG(buffer)
	if err != nil {
		return "", []error{err}
	}

	fileName := fmt.Sprintf("canvas-%d-%d.png", canvas.ID, time.Now().Unix())
	url, err := as.fileManager.UploadCanvasArchive(
		fileName,
		bytes.NewReader(encoded),
		int64(len(encoded)),
		codec.ContentType,
	)
	if err != nil {
		return "", []error{err}
	}
	return url, nil
}
