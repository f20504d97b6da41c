package handler

import (
	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/models"

	"github.com/ztrue/tracerr"
	"gorm.io/gorm"
)

var (
	ErrAlbumNotExist = tracerr.New("album does not exist")
	ErrSongNotExist  = tracerr.New("song does not exist")
)

// AlbumInfo is one album row with its derived vote count.
type AlbumInfo struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	CoverURL  string `json:"cover_image_url"`
	VoteCount int64  `json:"vote_count"`
}

// SongInfo is one song row with its derived vote count.
type SongInfo struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	AlbumID   uint   `json:"album_id"`
	VoteCount int64  `json:"vote_count"`
}

// AlbumDetail is AlbumInfo plus the album songs.
type AlbumDetail struct {
	AlbumInfo
	Songs []*SongInfo `json:"songs"`
}

func CreateAlbum(title string, artist string, coverURL string) (*models.Album, error) {
	album := &models.Album{
		Title:    title,
		Artist:   artist,
		CoverURL: coverURL,
	}
	if err := db.GetDB().Create(album).Error; err != nil {
		return nil, tracerr.Wrap(err)
	}
	return album, nil
}

// AddSong creates a song under an album, the album is checked inside the
// insert transaction.
func AddSong(albumID uint, title string) (*models.Song, error) {
	song := &models.Song{
		Title:   title,
		AlbumID: albumID,
	}
	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := albumExist(tx, albumID); err != nil {
			return err
		}
		return tracerr.Wrap(tx.Create(song).Error)
	})
	if err != nil {
		return nil, err
	}
	return song, nil
}

// AlbumPatch carries the partial update fields, nil fields stay unchanged.
type AlbumPatch struct {
	Title    *string
	Artist   *string
	CoverURL *string
}

// UpdateAlbum applies only the patch fields that are present.
func UpdateAlbum(id uint, patch *AlbumPatch) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		var album models.Album
		err := tx.First(&album, id).Error
		if err == gorm.ErrRecordNotFound {
			return ErrAlbumNotExist
		} else if err != nil {
			return tracerr.Wrap(err)
		}
		if patch.Title != nil {
			album.Title = *patch.Title
		}
		if patch.Artist != nil {
			album.Artist = *patch.Artist
		}
		if patch.CoverURL != nil {
			album.CoverURL = *patch.CoverURL
		}
		return tracerr.Wrap(tx.Save(&album).Error)
	})
}

// DeleteAlbum removes the album, its songs, and every vote membership
// referencing them. The cascade is an explicit multi-step delete in one
// transaction, not a storage engine behavior.
func DeleteAlbum(id uint) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := albumExist(tx, id); err != nil {
			return err
		}
		var songIDs []uint
		if err := tx.Model(&models.Song{}).Where("album_id = ?", id).
			Pluck("id", &songIDs).Error; err != nil {
			return tracerr.Wrap(err)
		}
		if len(songIDs) > 0 {
			if err := tx.Where("song_id IN ?", songIDs).
				Delete(&models.SongVote{}).Error; err != nil {
				return tracerr.Wrap(err)
			}
			if err := tx.Where("album_id = ?", id).
				Delete(&models.Song{}).Error; err != nil {
				return tracerr.Wrap(err)
			}
		}
		if err := tx.Where("album_id = ?", id).
			Delete(&models.AlbumVote{}).Error; err != nil {
			return tracerr.Wrap(err)
		}
		return tracerr.Wrap(tx.Delete(&models.Album{}, id).Error)
	})
}

// DeleteSong removes the song and its vote memberships.
func DeleteSong(id uint) error {
	return db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := songExist(tx, id); err != nil {
			return err
		}
		if err := tx.Where("song_id = ?", id).
			Delete(&models.SongVote{}).Error; err != nil {
			return tracerr.Wrap(err)
		}
		return tracerr.Wrap(tx.Delete(&models.Song{}, id).Error)
	})
}

// ListAlbums returns every album with vote counts, stable id order.
func ListAlbums() ([]*AlbumInfo, error) {
	ret := []*AlbumInfo{}
	err := db.GetDB().Model(&models.Album{}).
		Select("albums.id, albums.title, albums.artist, albums.cover_url, count(album_votes.id) as vote_count").
		Joins("LEFT JOIN album_votes ON album_votes.album_id = albums.id").
		Group("albums.id").Order("albums.id").
		Find(&ret).Error
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return ret, nil
}

// ListSongs returns the songs of one album with vote counts.
func ListSongs(albumID uint) ([]*SongInfo, error) {
	if err := albumExist(db.GetDB(), albumID); err != nil {
		return nil, err
	}
	return songInfos(db.GetDB(), albumID)
}

// GetAlbum returns one album with songs and vote counts.
func GetAlbum(id uint) (*AlbumDetail, error) {
	ret := new(AlbumDetail)
	err := db.GetDB().Model(&models.Album{}).
		Select("albums.id, albums.title, albums.artist, albums.cover_url, count(album_votes.id) as vote_count").
		Joins("LEFT JOIN album_votes ON album_votes.album_id = albums.id").
		Where("albums.id = ?", id).Group("albums.id").
		Take(&ret.AlbumInfo).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrAlbumNotExist
	} else if err != nil {
		return nil, tracerr.Wrap(err)
	}
	ret.Songs, err = songInfos(db.GetDB(), id)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func songInfos(tx *gorm.DB, albumID uint) ([]*SongInfo, error) {
	ret := []*SongInfo{}
	err := tx.Model(&models.Song{}).
		Select("songs.id, songs.title, songs.album_id, count(song_votes.id) as vote_count").
		Joins("LEFT JOIN song_votes ON song_votes.song_id = songs.id").
		Where("songs.album_id = ?", albumID).
		Group("songs.id").Order("songs.id").
		Find(&ret).Error
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return ret, nil
}

func albumExist(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Album{}).Where("id = ?", id).
		Count(&count).Error; err != nil {
		return tracerr.Wrap(err)
	}
	if count == 0 {
		return ErrAlbumNotExist
	}
	return nil
}

func songExist(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Song{}).Where("id = ?", id).
		Count(&count).Error; err != nil {
		return tracerr.Wrap(err)
	}
	if count == 0 {
		return ErrSongNotExist
	}
	return nil
}
