package elements

import "time"

// Element is a single item inside a collection. Data is an arbitrary JSON
// object stored as jsonb; nil means no payload.
type Element struct {
	ID           int64
	Name         string
	Description  string
	Data         map[string]any
	CollectionID int64
	CreatedAt    time.Time
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Name         *string
	Description  *string
	Data         map[string]any
	CollectionID *int64
}
