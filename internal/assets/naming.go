package assets

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/goliatone/go-slug"

	"notepress/internal/domain"
)

// After this many base-name collisions, give up on numeric suffixes and
// key the name off the content hash instead.
const maxNameCollisions = 25

type namingResult struct {
	filename   string
	decision   domain.NamingDecision
	capturedAt *time.Time
}

// deriveName picks the stored filename by precedence: content title,
// original filename, capture date, content hash. The first usable input
// wins and the decision is recorded with a justification. excludeID lets
// the uniqueness check ignore the record being renamed.
func (s *Store) deriveName(ctx context.Context, in StoreInput, contentHash, excludeID string) namingResult {
	ext := extensionFor(in.MIME, in.OriginalFilename)

	if base := sanitizeName(in.Title); base != "" {
		return s.uniquify(ctx, in.OwnerID, namingResult{
			filename: base + ext,
			decision: domain.NamingDecision{
				Strategy: domain.NamingTitle,
				Reason:   fmt.Sprintf("derived from content title %q", in.Title),
			},
		}, contentHash, excludeID)
	}

	if base := sanitizeName(strings.TrimSuffix(in.OriginalFilename, path.Ext(in.OriginalFilename))); base != "" {
		return s.uniquify(ctx, in.OwnerID, namingResult{
			filename: base + ext,
			decision: domain.NamingDecision{
				Strategy: domain.NamingOriginalFilename,
				Reason:   fmt.Sprintf("derived from original filename %q", in.OriginalFilename),
			},
		}, contentHash, excludeID)
	}

	if captured, origin := captureDate(in); captured != nil {
		return s.uniquify(ctx, in.OwnerID, namingResult{
			filename: captured.Format("2006-01-02-150405") + ext,
			decision: domain.NamingDecision{
				Strategy: domain.NamingCaptureDate,
				Reason:   "derived from capture date (" + origin + ")",
			},
			capturedAt: captured,
		}, contentHash, excludeID)
	}

	return namingResult{
		filename: contentHash[:12] + ext,
		decision: domain.NamingDecision{
			Strategy: domain.NamingContentHash,
			Reason:   "no usable title, filename, or capture date; fell back to content hash",
		},
	}
}

// uniquify appends an incrementing suffix while the base name collides
// with an unrelated object, then falls back to a hash-suffixed name.
func (s *Store) uniquify(ctx context.Context, ownerID string, r namingResult, contentHash, excludeID string) namingResult {
	ext := path.Ext(r.filename)
	base := strings.TrimSuffix(r.filename, ext)

	for i := 0; i <= maxNameCollisions; i++ {
		candidate := base + ext
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d%s", base, i, ext)
		}

		taken, err := s.records.FilenameTaken(ctx, ownerID, candidate, excludeID)
		if err != nil {
			s.logger.Warn("filename uniqueness check failed", "filename", candidate, "error", err)
			break
		}
		if !taken {
			r.filename = candidate
			return r
		}
	}

	r.filename = base + "-" + contentHash[:8] + ext
	return r
}

// sanitizeName slugs a candidate base name. Names that collapse to two or
// fewer characters, or that carry no letters at all (camera counters,
// timestamps), are considered meaningless and rejected.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	normalized, err := slug.Normalize(name)
	if err != nil || len(normalized) <= 2 {
		return ""
	}
	if !strings.ContainsFunc(normalized, unicode.IsLetter) {
		return ""
	}
	return normalized
}

var filenameDatePattern = regexp.MustCompile(`(20\d{2}|19\d{2})[-_.]?(\d{2})[-_.]?(\d{2})[-_. T]?(\d{2})?[-_.:]?(\d{2})?[-_.:]?(\d{2})?`)

// captureDate finds a plausible capture timestamp: embedded binary
// metadata first, then filename patterns, then the owning content's own
// date. Returns nil when nothing usable exists.
func captureDate(in StoreInput) (*time.Time, string) {
	if ts := exifCaptureDate(in.Bytes); ts != nil {
		return ts, "image metadata"
	}

	if in.OriginalFilename != "" {
		base := strings.TrimSuffix(in.OriginalFilename, path.Ext(in.OriginalFilename))
		if m := filenameDatePattern.FindStringSubmatch(base); m != nil {
			candidate := fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
			if m[4] != "" && m[5] != "" && m[6] != "" {
				candidate += fmt.Sprintf(" %s:%s:%s", m[4], m[5], m[6])
			}
			if ts, err := dateparse.ParseAny(candidate); err == nil && plausibleDate(ts) {
				return &ts, "filename pattern"
			}
		}
	}

	if !in.ContentDate.IsZero() {
		ts := in.ContentDate
		return &ts, "content date"
	}

	return nil, ""
}

func plausibleDate(ts time.Time) bool {
	return ts.Year() >= 1990 && ts.Year() <= time.Now().Year()+1
}
