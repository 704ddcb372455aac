package collections

import "time"

// Collection groups elements inside an encyclopedia. Configuration is an
// arbitrary JSON object stored as jsonb; nil means no configuration.
type Collection struct {
	ID             int64
	EncyclopediaID int64
	Name           string
	Description    string
	Configuration  map[string]any
	CreatedAt      time.Time
}
