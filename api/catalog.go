package api

import (
	"github.com/samko5sam/webapps/handler"
	"github.com/samko5sam/webapps/utils/log"

	"github.com/gin-gonic/gin"
)

type albumParam struct {
	Title    string `json:"title" binding:"required,max=120"`
	Artist   string `json:"artist" binding:"required,max=120"`
	CoverURL string `json:"cover_image_url" binding:"max=255"`
}

func APIAddAlbum(c *gin.Context) (int, error) {
	var param albumParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Title and artist are required"})
		return 0, nil
	}
	album, err := handler.CreateAlbum(param.Title, param.Artist, param.CoverURL)
	if err != nil {
		return 500, err
	}
	log.New().WithFields(log.F{
		"id":    album.ID,
		"title": album.Title,
	}).Info("Album added")
	c.JSON(201, gin.H{"msg": "Album added successfully", "id": album.ID})
	return 0, nil
}

func APIAddSong(c *gin.Context) (int, error) {
	albumID, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	}
	var param struct {
		Title string `json:"title" binding:"required,max=120"`
	}
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Title is required"})
		return 0, nil
	}
	song, err := handler.AddSong(albumID, param.Title)
	if err == handler.ErrAlbumNotExist {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	c.JSON(201, gin.H{"msg": "Song added successfully", "id": song.ID})
	return 0, nil
}

func APIGetAlbums(c *gin.Context) (int, error) {
	albums, err := handler.ListAlbums()
	if err != nil {
		return 500, err
	}
	c.JSON(200, albums)
	return 0, nil
}

func APIGetAlbum(c *gin.Context) (int, error) {
	id, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	}
	album, err := handler.GetAlbum(id)
	if err == handler.ErrAlbumNotExist {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	c.JSON(200, album)
	return 0, nil
}

func APIGetSongs(c *gin.Context) (int, error) {
	albumID, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	}
	songs, err := handler.ListSongs(albumID)
	if err == handler.ErrAlbumNotExist {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	c.JSON(200, songs)
	return 0, nil
}

func APIUpdateAlbum(c *gin.Context) (int, error) {
	id, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	}
	// pointer fields keep absent keys distinguishable from empty ones
	var param struct {
		Title    *string `json:"title" binding:"omitempty,max=120"`
		Artist   *string `json:"artist" binding:"omitempty,max=120"`
		CoverURL *string `json:"cover_image_url" binding:"omitempty,max=255"`
	}
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Invalid request body"})
		return 0, nil
	}
	err := handler.UpdateAlbum(id, &handler.AlbumPatch{
		Title:    param.Title,
		Artist:   param.Artist,
		CoverURL: param.CoverURL,
	})
	if err == handler.ErrAlbumNotExist {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	c.JSON(200, gin.H{"msg": "Album updated successfully"})
	return 0, nil
}

func APIDeleteAlbum(c *gin.Context) (int, error) {
	id, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	}
	err := handler.DeleteAlbum(id)
	if err == handler.ErrAlbumNotExist {
		c.JSON(404, gin.H{"msg": "Album not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	log.New().WithField("id", id).Info("Album deleted")
	c.JSON(200, gin.H{"msg": "Album deleted successfully"})
	return 0, nil
}

func APIDeleteSong(c *gin.Context) (int, error) {
	id, ok := ParamID(c)
	if !ok {
		c.JSON(404, gin.H{"msg": "Song not found"})
		return 0, nil
	}
	err := handler.DeleteSong(id)
	if err == handler.ErrSongNotExist {
		c.JSON(404, gin.H{"msg": "Song not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	c.JSON(200, gin.H{"msg": "Song deleted successfully"})
	return 0, nil
}
