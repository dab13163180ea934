package service

import "notepress/internal/domain"

// TagCache maps tag ids to names for the duration of one sync session. It
// is constructed per pass and threaded through calls explicitly; nothing
// here outlives the pass or is shared across goroutines.
type TagCache struct {
	names map[string]string
}

func NewTagCache() *TagCache {
	return &TagCache{names: make(map[string]string)}
}

func (c *TagCache) Put(tags []domain.Tag) {
	for _, t := range tags {
		c.names[t.ID] = t.Name
	}
}

// PutNames records one note's id→name association. The association is
// positional, so a response whose length does not match the id list
// cannot be zipped reliably and is not cached.
func (c *TagCache) PutNames(ids []string, names []string) {
	if len(ids) != len(names) {
		return
	}
	for i, id := range ids {
		c.names[id] = names[i]
	}
}

// Resolve maps ids to names. ok is false when any id is unknown, meaning
// the caller needs a tag-name lookup before trusting the result.
func (c *TagCache) Resolve(ids []string) ([]string, bool) {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, known := c.names[id]
		if !known {
			return nil, false
		}
		names = append(names, name)
	}
	return names, true
}
