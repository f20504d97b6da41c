package handler

import (
	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/models"

	"github.com/ztrue/tracerr"
	"gorm.io/gorm"
)

// ToggleAlbumVote flips the (user, album) vote membership. Returns true when
// the vote was cast, false when an existing vote was removed. Callers cannot
// pick a direction, two successive calls always restore the prior state.
func ToggleAlbumVote(userID uint, albumID uint) (voted bool, err error) {
	err = db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := albumExist(tx, albumID); err != nil {
			return err
		}
		// delete then insert is the atomic check-and-flip, the composite
		// unique index resolves concurrent toggles on the same pair
		ret := tx.Where("user_id = ? AND album_id = ?", userID, albumID).
			Delete(&models.AlbumVote{})
		if ret.Error != nil {
			return tracerr.Wrap(ret.Error)
		}
		if ret.RowsAffected == 0 {
			voted = true
			return tracerr.Wrap(tx.Create(&models.AlbumVote{
				UserID:  userID,
				AlbumID: albumID,
			}).Error)
		}
		return nil
	})
	return
}

// ToggleSongVote is ToggleAlbumVote for songs.
func ToggleSongVote(userID uint, songID uint) (voted bool, err error) {
	err = db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := songExist(tx, songID); err != nil {
			return err
		}
		ret := tx.Where("user_id = ? AND song_id = ?", userID, songID).
			Delete(&models.SongVote{})
		if ret.Error != nil {
			return tracerr.Wrap(ret.Error)
		}
		if ret.RowsAffected == 0 {
			voted = true
			return tracerr.Wrap(tx.Create(&models.SongVote{
				UserID: userID,
				SongID: songID,
			}).Error)
		}
		return nil
	})
	return
}

// UserVotes returns every album and song id the user has voted for.
func UserVotes(userID uint) (albumIDs []uint, songIDs []uint, err error) {
	albumIDs = []uint{}
	songIDs = []uint{}
	if err = db.GetDB().Model(&models.AlbumVote{}).Where("user_id = ?", userID).
		Order("album_id").Pluck("album_id", &albumIDs).Error; err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	if err = db.GetDB().Model(&models.SongVote{}).Where("user_id = ?", userID).
		Order("song_id").Pluck("song_id", &songIDs).Error; err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	return
}

// CountAlbumVotes returns current album vote cardinality.
func CountAlbumVotes(albumID uint) (int64, error) {
	var count int64
	if err := db.GetDB().Model(&models.AlbumVote{}).Where("album_id = ?", albumID).
		Count(&count).Error; err != nil {
		return 0, tracerr.Wrap(err)
	}
	return count, nil
}

// CountSongVotes returns current song vote cardinality.
func CountSongVotes(songID uint) (int64, error) {
	var count int64
	if err := db.GetDB().Model(&models.SongVote{}).Where("song_id = ?", songID).
		Count(&count).Error; err != nil {
		return 0, tracerr.Wrap(err)
	}
	return count, nil
}
