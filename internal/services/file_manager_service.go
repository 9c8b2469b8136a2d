package services

import (
	"io"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/enums"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/interfaces"
)

type FileManagerService struct {
	fileManager interfaces.FileManager
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
	}
}

func (fs *FileManagerService) UploadCanvasArchive(fileName string, file io.Reader, fileSize int64, contentType string) (string, error) {
	return fs.fileManager.UploadFile(fileName, file, fileSize, contentType, enums.FILE_BUCKET_CANVAS_ARCHIVE)
}
