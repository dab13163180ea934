package transform

import (
	"bytes"
	"net/http"
	"strings"
)

// DetectMIME identifies content by binary signature. Claimed extensions
// and upstream Content-Type headers are routinely wrong or absent for
// remote media, so the bytes are the only authority.
func DetectMIME(data []byte) string {
	if len(data) >= 12 {
		// ISO-BMFF brands http.DetectContentType does not know.
		brand := string(data[8:12])
		if bytes.Equal(data[4:8], []byte("ftyp")) {
			switch brand {
			case "heic", "heix", "mif1":
				return "image/heic"
			case "avif":
				return "image/avif"
			}
		}
	}

	detected := http.DetectContentType(data)
	if i := strings.Index(detected, ";"); i >= 0 {
		detected = detected[:i]
	}
	return strings.TrimSpace(detected)
}

// IsImageMIME reports whether the type renders as an inline image.
func IsImageMIME(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}
