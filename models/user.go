package models

import "time"

type Track struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is an account of the voting service. The first user ever created is
// granted admin at registration time, the flag is never mutable through the
// API afterwards.
type User struct {
	ID       uint   `gorm:"primaryKey;not null" json:"id"`
	Username string `gorm:"uniqueIndex;type:varchar(80);not null" json:"username"`
	Password string `gorm:"type:varchar(128);not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false;not null" json:"is_admin"`
	Track    Track  `gorm:"embedded" json:"-"`
}
