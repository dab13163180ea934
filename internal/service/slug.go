package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

const maxSlugCollisions = 50

// uniqueSlug derives a blog-unique slug from a title, suffixing on
// collision with other posts.
func uniqueSlug(ctx context.Context, posts PostStore, blogID int64, title, excludeID string) (string, error) {
	base, err := slug.Normalize(title)
	if err != nil || base == "" {
		base = "post"
	}

	for i := 1; i <= maxSlugCollisions; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		taken, err := posts.SlugTaken(ctx, blogID, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return base + "-" + strings.Split(uuid.NewString(), "-")[0], nil
}
