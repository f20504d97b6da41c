package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlbum(t *testing.T) uint {
	album, err := CreateAlbum("Test Album", "Test Artist", "")
	require.Nil(t, err)
	return album.ID
}

func newSong(t *testing.T, albumID uint) uint {
	song, err := AddSong(albumID, "Test Song")
	require.Nil(t, err)
	return song.ID
}

func TestToggleAlbumVote(t *testing.T) {
	albumID := newAlbum(t)
	const userID = 1000

	before, err := CountAlbumVotes(albumID)
	assert.Nil(t, err)

	voted, err := ToggleAlbumVote(userID, albumID)
	assert.Nil(t, err)
	assert.True(t, voted)

	count, err := CountAlbumVotes(albumID)
	assert.Nil(t, err)
	assert.Equal(t, before+1, count)

	albums, _, err := UserVotes(userID)
	assert.Nil(t, err)
	assert.Contains(t, albums, albumID)

	// second toggle returns everything to the pre-call state
	voted, err = ToggleAlbumVote(userID, albumID)
	assert.Nil(t, err)
	assert.False(t, voted)

	count, err = CountAlbumVotes(albumID)
	assert.Nil(t, err)
	assert.Equal(t, before, count)

	albums, _, err = UserVotes(userID)
	assert.Nil(t, err)
	assert.NotContains(t, albums, albumID)
}

func TestToggleAlbumVoteNotExist(t *testing.T) {
	_, err := ToggleAlbumVote(1, 99999)
	assert.ErrorIs(t, err, ErrAlbumNotExist)
}

func TestToggleSongVote(t *testing.T) {
	songID := newSong(t, newAlbum(t))
	const userID = 1001

	voted, err := ToggleSongVote(userID, songID)
	assert.Nil(t, err)
	assert.True(t, voted)

	count, err := CountSongVotes(songID)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, count)

	_, songs, err := UserVotes(userID)
	assert.Nil(t, err)
	assert.Contains(t, songs, songID)

	voted, err = ToggleSongVote(userID, songID)
	assert.Nil(t, err)
	assert.False(t, voted)

	count, err = CountSongVotes(songID)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, count)
}

func TestToggleSongVoteNotExist(t *testing.T) {
	_, err := ToggleSongVote(1, 99999)
	assert.ErrorIs(t, err, ErrSongNotExist)
}

func TestVoteIndependentPairs(t *testing.T) {
	albumID := newAlbum(t)
	songID := newSong(t, albumID)

	// album and song votes of one user do not affect each other
	_, err := ToggleAlbumVote(1002, albumID)
	assert.Nil(t, err)
	_, err = ToggleSongVote(1002, songID)
	assert.Nil(t, err)
	_, err = ToggleAlbumVote(1003, albumID)
	assert.Nil(t, err)

	count, err := CountAlbumVotes(albumID)
	assert.Nil(t, err)
	assert.EqualValues(t, 2, count)
	count, err = CountSongVotes(songID)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, count)

	_, err = ToggleAlbumVote(1002, albumID)
	assert.Nil(t, err)
	count, err = CountAlbumVotes(albumID)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, count)

	albums, _, err := UserVotes(1003)
	assert.Nil(t, err)
	assert.Contains(t, albums, albumID)
}

func TestCountMatchesMembership(t *testing.T) {
	albumID := newAlbum(t)
	users := []uint{2000, 2001, 2002, 2003}
	for _, u := range users {
		_, err := ToggleAlbumVote(u, albumID)
		require.Nil(t, err)
	}

	count, err := CountAlbumVotes(albumID)
	assert.Nil(t, err)
	assert.EqualValues(t, len(users), count)

	listed := 0
	for _, u := range users {
		albums, _, err := UserVotes(u)
		require.Nil(t, err)
		for _, a := range albums {
			if a == albumID {
				listed++
			}
		}
	}
	assert.EqualValues(t, count, listed)
}
