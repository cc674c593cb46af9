package constants

import (
	"path/filepath"
	"strings"
)

// MIME types the chat endpoint accepts for the single image field.
// "image/jpg" is not a real registered type but browsers and the legacy
// web client both send it, so it stays on the list.
var AllowedImageMimes = []string{"image/jpeg", "image/png", "image/jpg"}

func IsAllowedImageMime(mime string) bool {
	mime = strings.ToLower(strings.TrimSpace(mime))
	for _, m := range AllowedImageMimes {
		if m == mime {
			return true
		}
	}
	return false
}

// DetectImageMimeFromExt maps a filename to its image MIME type, used
// when the multipart part arrives without a Content-Type header.
func DetectImageMimeFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return ""
	}
}
