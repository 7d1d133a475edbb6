// Package tree renders a filtered directory subtree as connector-prefixed
// ASCII-art lines.
package tree

// SkippedReason clarifies why an entry was left out of the diagram.
type SkippedReason string

const (
	ReasonIgnoredRule  SkippedReason = "Ignored (Gitignore/Custom Rule)"
	ReasonExcludeMatch SkippedReason = "Filtered (Exclude Pattern)"
	ReasonIncludeMiss  SkippedReason = "Filtered (Include Pattern Mismatch)"
	ReasonSkippedPerm  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedRead  SkippedReason = "Skipped (Read Error)"
)

// SkippedItem holds information about one skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items during one render pass.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a tracker with room for capacity items.
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{items: make([]SkippedItem, 0, capacity)}
}

// Track records one skipped path.
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns everything tracked so far.
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}

// Stats counts what made it into the diagram.
type Stats struct {
	Dirs  int64
	Files int64
}
