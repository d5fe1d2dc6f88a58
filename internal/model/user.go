package model

import "time"

// User is the single persisted entity: one credentials record per account.
// The unique indexes are the source of truth for username/email uniqueness;
// application-level checks are only a fast path for friendlier errors.
// Records are created on registration and never updated or deleted here.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
