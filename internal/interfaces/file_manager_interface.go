package interfaces

import "io"

// FileManager stores rendered canvas archives and returns a public URL.
type FileManager interface {
	UploadFile(fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error)
}
