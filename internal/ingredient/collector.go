// Package ingredient maintains the ordered, deduplicated ingredient set a
// user builds up before requesting recipes.
package ingredient

import "strings"

// Normalize trims surrounding whitespace and lowercases a raw entry.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Collector is an ordered set of normalized ingredient strings. Insertion
// order is preserved; duplicates (after normalization) are rejected.
type Collector struct {
	items []string
	seen  map[string]struct{}
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Add normalizes raw and appends it. Empty and already-present values are
// discarded; the return value reports whether an entry was added.
func (c *Collector) Add(raw string) bool {
	v := Normalize(raw)
	if v == "" {
		return false
	}
	if _, ok := c.seen[v]; ok {
		return false
	}
	c.seen[v] = struct{}{}
	c.items = append(c.items, v)
	return true
}

// AddMany splits pasted text on commas and newlines and adds each token,
// keeping relative input order. Returns the number of entries added.
func (c *Collector) AddMany(raw string) int {
	added := 0
	for _, token := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		if c.Add(token) {
			added++
		}
	}
	return added
}

// Remove deletes the entry matching the normalized value, if present.
func (c *Collector) Remove(raw string) bool {
	v := Normalize(raw)
	if _, ok := c.seen[v]; !ok {
		return false
	}
	delete(c.seen, v)
	for i, item := range c.items {
		if item == v {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return true
}

// RemoveLast deletes the most recently added surviving entry. It backs the
// delete-on-empty-input shortcut in the ingredient field.
func (c *Collector) RemoveLast() (string, bool) {
	if len(c.items) == 0 {
		return "", false
	}
	last := c.items[len(c.items)-1]
	c.items = c.items[:len(c.items)-1]
	delete(c.seen, last)
	return last, true
}

// Contains reports whether the normalized value is present.
func (c *Collector) Contains(raw string) bool {
	_, ok := c.seen[Normalize(raw)]
	return ok
}

// Items returns a copy of the entries in insertion order.
func (c *Collector) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries.
func (c *Collector) Len() int {
	return len(c.items)
}

// Merge returns base plus extras, deduplicated through a collector. It is
// used to fold pantry staples into the submitted ingredient list.
func Merge(base, extras []string) []string {
	c := NewCollector()
	for _, v := range base {
		c.Add(v)
	}
	for _, v := range extras {
		c.Add(v)
	}
	return c.Items()
}
