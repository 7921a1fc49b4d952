package models

// Vote records that a user upvoted a post. Absence of a row means no vote;
// there is no stored downvote state. The composite primary key guarantees at
// most one vote per (user, post) at the database level.
type Vote struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
