package enums

const (
	FILE_BUCKET_CANVAS_ARCHIVE = "canvas-archives"
)
