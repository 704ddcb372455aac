package tags

import "time"

// Tag is a standalone label, not tied to the content hierarchy.
type Tag struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}
