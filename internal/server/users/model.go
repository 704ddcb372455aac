package users

import "time"

// User is a registered account. Password holds the argon2id digest, never
// the plaintext. ID, Username and CreatedAt are immutable after creation.
type User struct {
	ID        int64
	Username  string
	Password  string
	CreatedAt time.Time
}
