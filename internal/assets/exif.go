package assets

import (
	"bytes"
	"encoding/binary"
	"regexp"
	"time"
)

var exifDatePattern = regexp.MustCompile(`(19|20)\d{2}:\d{2}:\d{2} \d{2}:\d{2}:\d{2}`)

// exifCaptureDate pulls a capture timestamp out of a JPEG's Exif APP1
// segment. Exif stores DateTimeOriginal as "YYYY:MM:DD HH:MM:SS" ASCII,
// so scanning the segment for that shape avoids a full IFD walk while
// staying confined to genuine metadata bytes.
func exifCaptureDate(data []byte) *time.Time {
	segment := exifSegment(data)
	if segment == nil {
		return nil
	}

	match := exifDatePattern.Find(segment)
	if match == nil {
		return nil
	}

	ts, err := time.Parse("2006:01:02 15:04:05", string(match))
	if err != nil || !plausibleDate(ts) {
		return nil
	}
	return &ts
}

// exifSegment returns the body of the first APP1 Exif segment of a JPEG,
// or nil when the bytes are not a JPEG or carry no Exif.
func exifSegment(data []byte) []byte {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil
	}

	offset := 2
	for offset+4 <= len(data) {
		if data[offset] != 0xFF {
			return nil
		}
		marker := data[offset+1]
		// Start-of-scan means no more metadata segments.
		if marker == 0xDA {
			return nil
		}

		length := int(binary.BigEndian.Uint16(data[offset+2 : offset+4]))
		if length < 2 || offset+2+length > len(data) {
			return nil
		}

		body := data[offset+4 : offset+2+length]
		if marker == 0xE1 && bytes.HasPrefix(body, []byte("Exif\x00\x00")) {
			return body
		}

		offset += 2 + length
	}
	return nil
}
