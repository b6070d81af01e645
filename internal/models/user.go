package models

// User represents an investor. Users are immutable after creation; the
// password is a bcrypt-hashed credential placeholder, never serialized.
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}
