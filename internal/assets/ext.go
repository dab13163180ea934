package assets

import (
	"path"
	"strings"
)

var mimeExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/heic":      ".heic",
	"image/avif":      ".avif",
	"image/svg+xml":   ".svg",
	"image/bmp":       ".bmp",
	"image/tiff":      ".tiff",
	"application/pdf": ".pdf",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
	"audio/mpeg":      ".mp3",
	"audio/wav":       ".wav",
	"audio/ogg":       ".ogg",
	"text/plain":      ".txt",
	"text/html":       ".html",
	"application/zip": ".zip",
}

// extensionFor maps a detected MIME type to a file extension, falling
// back to the original filename's extension, then ".bin".
func extensionFor(mime, originalFilename string) string {
	if ext, ok := mimeExtensions[strings.ToLower(mime)]; ok {
		return ext
	}
	if ext := strings.ToLower(path.Ext(originalFilename)); ext != "" && len(ext) <= 6 {
		return ext
	}
	return ".bin"
}
