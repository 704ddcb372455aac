package encyclopedias

import "time"

// Encyclopedia is the top level of the content hierarchy, owned by a user.
type Encyclopedia struct {
	ID          int64
	Name        string
	Description string
	CreatedBy   int64
	CreatedAt   time.Time
}
