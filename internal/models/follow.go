package models

import "time"

// Follow is a directed subscription edge: the follower receives the author's
// recipes in their feed. The composite primary key (FollowerID, AuthorID)
// ensures uniqueness, and the CHECK constraint rejects self-follow rows even
// when data is inserted outside the API.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;check:chk_follows_no_self,follower_id <> author_id"`
	AuthorID   uint `gorm:"primaryKey"`
	CreatedAt  time.Time

	Follower User `gorm:"foreignKey:FollowerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Author   User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
