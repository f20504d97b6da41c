package models

// Item is the single-table manager record.
type Item struct {
	ID          uint   `gorm:"primaryKey;not null" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Track       Track  `gorm:"embedded" json:"-"`
}
