package api

import (
	"github.com/samko5sam/webapps/handler"
	"github.com/samko5sam/webapps/utils/log"

	"github.com/gin-gonic/gin"
)

func APIVoteAlbum(c *gin.Context) (int, error) {
	id, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	}
	voted, err := handler.ToggleAlbumVote(UID(c), id)
	if err == handler.ErrAlbumNotExist {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	log.New().WithFields(log.F{
		"uid":   UID(c),
		"album": id,
		"voted": voted,
	}).Info("Album vote toggled")
	if voted {
		c.JSON(200, gin.H{"msg": "Voted successfully"})
	} else {
		c.JSON(200, gin.H{"msg": "Vote removed"})
	}
	return 0, nil
}

func APIVoteSong(c *gin.Context) (int, error) {
	id, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Song not found"})
		return 0, nil
	}
	voted, err := handler.ToggleSongVote(UID(c), id)
	if err == handler.ErrSongNotExist {
		c.JSON(404, gin.H{"msg": "Song not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	if voted {
		c.JSON(200, gin.H{"msg": "Voted successfully"})
	} else {
		c.JSON(200, gin.H{"msg": "Vote removed"})
	}
	return 0, nil
}

func APIMyVotes(c *gin.Context) (int, error) {
	albumIDs, songIDs, err := handler.UserVotes(UID(c))
	if err != nil {
		return 500, err
	}
	c.JSON(200, gin.H{
		"voted_albums": albumIDs,
		"voted_songs":  songIDs,
	})
	return 0, nil
}

// VoteAPI is the route table of the vote service.
func VoteAPI() []*APIItem {
	return []*APIItem{
		{Path: "/register", Method: APIPost, Role: RoleGuest, Func: APIRegister},
		{Path: "/login", Method: APIPost, Role: RoleGuest, Func: APILogin},
		{Path: "/profile", Method: APIGet, Role: RoleUser, Func: APIProfile},
		{Path: "/albums", Method: APIPost, Role: RoleAdmin, Func: APIAddAlbum},
		{Path: "/albums", Method: APIGet, Role: RoleGuest, Func: APIGetAlbums},
		{Path: "/albums/:id", Method: APIGet, Role: RoleGuest, Func: APIGetAlbum},
		{Path: "/albums/:id", Method: APIPut, Role: RoleAdmin, Func: APIUpdateAlbum},
		{Path: "/albums/:id", Method: APIDelete, Role: RoleAdmin, Func: APIDeleteAlbum},
		{Path: "/albums/:id/songs", Method: APIPost, Role: RoleAdmin, Func: APIAddSong},
		{Path: "/albums/:id/songs", Method: APIGet, Role: RoleGuest, Func: APIGetSongs},
		{Path: "/songs/:id", Method: APIDelete, Role: RoleAdmin, Func: APIDeleteSong},
		{Path: "/vote/album/:id", Method: APIPost, Role: RoleUser, Func: APIVoteAlbum},
		{Path: "/vote/song/:id", Method: APIPost, Role: RoleUser, Func: APIVoteSong},
		{Path: "/my-votes", Method: APIGet, Role: RoleUser, Func: APIMyVotes},
	}
}
