package handler

import (
	"testing"

	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAlbumAndSongs(t *testing.T) {
	album, err := CreateAlbum("OK Computer", "Radiohead", "https://example.com/ok.jpg")
	assert.Nil(t, err)
	assert.NotZero(t, album.ID)

	s1, err := AddSong(album.ID, "Airbag")
	assert.Nil(t, err)
	s2, err := AddSong(album.ID, "Paranoid Android")
	assert.Nil(t, err)

	detail, err := GetAlbum(album.ID)
	assert.Nil(t, err)
	assert.Equal(t, "OK Computer", detail.Title)
	assert.Equal(t, "Radiohead", detail.Artist)
	assert.EqualValues(t, 0, detail.VoteCount)
	require.Len(t, detail.Songs, 2)
	assert.Equal(t, s1.ID, detail.Songs[0].ID)
	assert.Equal(t, s2.ID, detail.Songs[1].ID)
}

func TestAddSongNoAlbum(t *testing.T) {
	_, err := AddSong(99999, "Orphan")
	assert.ErrorIs(t, err, ErrAlbumNotExist)
}

func TestUpdateAlbumPartial(t *testing.T) {
	album, err := CreateAlbum("In Rainbows", "Radiohead", "https://example.com/ir.jpg")
	require.Nil(t, err)

	title := "In Rainbows (Deluxe)"
	assert.Nil(t, UpdateAlbum(album.ID, &AlbumPatch{Title: &title}))

	detail, err := GetAlbum(album.ID)
	assert.Nil(t, err)
	assert.Equal(t, title, detail.Title)
	// absent fields stay untouched
	assert.Equal(t, "Radiohead", detail.Artist)
	assert.Equal(t, "https://example.com/ir.jpg", detail.CoverURL)

	// empty string is a real value, not an absent field
	empty := ""
	assert.Nil(t, UpdateAlbum(album.ID, &AlbumPatch{CoverURL: &empty}))
	detail, err = GetAlbum(album.ID)
	assert.Nil(t, err)
	assert.Equal(t, "", detail.CoverURL)
	assert.Equal(t, title, detail.Title)

	assert.ErrorIs(t, UpdateAlbum(99999, &AlbumPatch{Title: &title}), ErrAlbumNotExist)
}

func TestDeleteAlbumCascade(t *testing.T) {
	album, err := CreateAlbum("Kid A", "Radiohead", "")
	require.Nil(t, err)
	song, err := AddSong(album.ID, "Everything in Its Right Place")
	require.Nil(t, err)

	other, err := CreateAlbum("Amnesiac", "Radiohead", "")
	require.Nil(t, err)
	otherSong, err := AddSong(other.ID, "Pyramid Song")
	require.Nil(t, err)

	_, err = ToggleAlbumVote(3000, album.ID)
	require.Nil(t, err)
	_, err = ToggleSongVote(3000, song.ID)
	require.Nil(t, err)
	_, err = ToggleAlbumVote(3000, other.ID)
	require.Nil(t, err)
	_, err = ToggleSongVote(3001, otherSong.ID)
	require.Nil(t, err)

	assert.Nil(t, DeleteAlbum(album.ID))

	_, err = GetAlbum(album.ID)
	assert.ErrorIs(t, err, ErrAlbumNotExist)

	var count int64
	assert.Nil(t, db.GetDB().Model(&models.Song{}).
		Where("album_id = ?", album.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	assert.Nil(t, db.GetDB().Model(&models.SongVote{}).
		Where("song_id = ?", song.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	assert.Nil(t, db.GetDB().Model(&models.AlbumVote{}).
		Where("album_id = ?", album.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// unrelated albums keep their songs and votes
	detail, err := GetAlbum(other.ID)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, detail.VoteCount)
	require.Len(t, detail.Songs, 1)
	assert.EqualValues(t, 1, detail.Songs[0].VoteCount)

	assert.ErrorIs(t, DeleteAlbum(album.ID), ErrAlbumNotExist)
}

func TestDeleteSong(t *testing.T) {
	album, err := CreateAlbum("Hail to the Thief", "Radiohead", "")
	require.Nil(t, err)
	song, err := AddSong(album.ID, "2 + 2 = 5")
	require.Nil(t, err)
	keep, err := AddSong(album.ID, "There There")
	require.Nil(t, err)

	_, err = ToggleSongVote(3002, song.ID)
	require.Nil(t, err)

	assert.Nil(t, DeleteSong(song.ID))
	assert.ErrorIs(t, DeleteSong(song.ID), ErrSongNotExist)

	var count int64
	assert.Nil(t, db.GetDB().Model(&models.SongVote{}).
		Where("song_id = ?", song.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	songs, err := ListSongs(album.ID)
	assert.Nil(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, keep.ID, songs[0].ID)
}

func TestListAlbumsVoteCount(t *testing.T) {
	a, err := CreateAlbum("Pablo Honey", "Radiohead", "")
	require.Nil(t, err)
	b, err := CreateAlbum("The Bends", "Radiohead", "")
	require.Nil(t, err)

	for _, u := range []uint{3100, 3101, 3102} {
		_, err = ToggleAlbumVote(u, a.ID)
		require.Nil(t, err)
	}
	_, err = ToggleAlbumVote(3100, b.ID)
	require.Nil(t, err)

	albums, err := ListAlbums()
	assert.Nil(t, err)

	found := 0
	for _, info := range albums {
		switch info.ID {
		case a.ID:
			assert.EqualValues(t, 3, info.VoteCount)
			found++
		case b.ID:
			assert.EqualValues(t, 1, info.VoteCount)
			found++
		}
	}
	assert.Equal(t, 2, found)
}

func TestListSongsNoAlbum(t *testing.T) {
	_, err := ListSongs(99999)
	assert.ErrorIs(t, err, ErrAlbumNotExist)
}
