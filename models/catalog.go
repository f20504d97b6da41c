package models

type Album struct {
	ID       uint   `gorm:"primaryKey;not null" json:"id"`
	Title    string `gorm:"type:varchar(120);not null" json:"title"`
	Artist   string `gorm:"type:varchar(120);not null" json:"artist"`
	CoverURL string `gorm:"type:varchar(255)" json:"cover_image_url"`
	Track    Track  `gorm:"embedded" json:"-"`
}

type Song struct {
	ID      uint   `gorm:"primaryKey;not null" json:"id"`
	Title   string `gorm:"type:varchar(120);not null" json:"title"`
	AlbumID uint   `gorm:"index;not null" json:"album_id"`
	Track   Track  `gorm:"embedded" json:"-"`
}

// AlbumVote is one (user, album) vote membership. The composite unique index
// is what makes concurrent toggles on the same pair resolve deterministically.
type AlbumVote struct {
	ID      uint  `gorm:"primaryKey;not null" json:"id"`
	UserID  uint  `gorm:"uniqueIndex:idx_album_vote;not null" json:"user_id"`
	AlbumID uint  `gorm:"uniqueIndex:idx_album_vote;not null" json:"album_id"`
	Track   Track `gorm:"embedded" json:"-"`
}

type SongVote struct {
	ID     uint  `gorm:"primaryKey;not null" json:"id"`
	UserID uint  `gorm:"uniqueIndex:idx_song_vote;not null" json:"user_id"`
	SongID uint  `gorm:"uniqueIndex:idx_song_vote;not null" json:"song_id"`
	Track  Track `gorm:"embedded" json:"-"`
}
