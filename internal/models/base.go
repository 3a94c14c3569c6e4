package models

import "time"

// BaseModel is gorm.Model without soft deletes. Users and posts are never
// soft-deleted here; admin deletes are real deletes so the unique title
// index frees up and comment cascades fire.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
