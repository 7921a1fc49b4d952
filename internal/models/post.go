package models

import "time"

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Published bool      `gorm:"not null;default:true" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`

	// Relationships
	Owner User   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Votes []Vote `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
