package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/models"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	viper.Set("token.secret", "test-secret")
	viper.Set("token.expire", 3600)
	db.NewDB(context.Background(), &db.DBConfig{
		Type: db.DBType_Sqlite,
		DSN:  ":memory:",
	}, &models.User{}, &models.Album{}, &models.Song{},
		&models.AlbumVote{}, &models.SongVote{})

	router = gin.New()
	AddAPI(router.Group("/"), AuthToken, VoteAPI())
	os.Exit(m.Run())
}

func request(t *testing.T, method string, path string, token string, body any) (int, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		require.Nil(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	ret := map[string]any{}
	if w.Body.Len() > 0 {
		require.Nil(t, json.Unmarshal(w.Body.Bytes(), &ret))
	}
	return w.Code, ret
}

func login(t *testing.T, username string, password string) string {
	code, rsp := request(t, "POST", "/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, 200, code, rsp["msg"])
	token, ok := rsp["access_token"].(string)
	require.True(t, ok)
	return token
}

func TestVoteService(t *testing.T) {
	// first account bootstraps as admin, later ones do not
	code, _ := request(t, "POST", "/register", "", gin.H{
		"username": "alice", "password": "password1"})
	require.Equal(t, 201, code)
	code, _ = request(t, "POST", "/register", "", gin.H{
		"username": "bob", "password": "password2"})
	require.Equal(t, 201, code)

	code, rsp := request(t, "POST", "/register", "", gin.H{
		"username": "alice", "password": "other"})
	assert.Equal(t, 409, code)
	assert.Equal(t, "Username already exists", rsp["msg"])

	code, _ = request(t, "POST", "/register", "", gin.H{"username": "nopass"})
	assert.Equal(t, 400, code)

	code, rsp = request(t, "POST", "/login", "", gin.H{
		"username": "alice", "password": "password1"})
	require.Equal(t, 200, code)
	alice, ok := rsp["access_token"].(string)
	require.True(t, ok)
	user := rsp["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, true, user["isAdmin"])

	code, rsp = request(t, "POST", "/login", "", gin.H{
		"username": "bob", "password": "password2"})
	require.Equal(t, 200, code)
	bob := rsp["access_token"].(string)
	assert.Equal(t, false, rsp["user"].(map[string]any)["isAdmin"])

	code, rsp = request(t, "POST", "/login", "", gin.H{
		"username": "bob", "password": "wrong"})
	assert.Equal(t, 401, code)
	assert.Equal(t, "Bad username or password", rsp["msg"])

	// catalog management is admin only
	code, rsp = request(t, "POST", "/albums", alice, gin.H{
		"title": "OK Computer", "artist": "Radiohead"})
	require.Equal(t, 201, code)
	albumID := rsp["id"].(float64)

	code, _ = request(t, "POST", "/albums", bob, gin.H{
		"title": "Nope", "artist": "Nobody"})
	assert.Equal(t, 403, code)
	code, _ = request(t, "POST", "/albums", "", gin.H{
		"title": "Nope", "artist": "Nobody"})
	assert.Equal(t, 401, code)

	code, rsp = request(t, "POST", albumPath(albumID)+"/songs", alice,
		gin.H{"title": "Airbag"})
	require.Equal(t, 201, code)
	songID := rsp["id"].(float64)

	// toggle on, count 1, toggle off, count 0
	code, rsp = request(t, "POST", votePath("album", albumID), bob, nil)
	assert.Equal(t, 200, code)
	assert.Equal(t, "Voted successfully", rsp["msg"])

	code, rsp = request(t, "GET", albumPath(albumID), "", nil)
	require.Equal(t, 200, code)
	assert.EqualValues(t, 1, rsp["vote_count"])

	code, rsp = request(t, "POST", votePath("album", albumID), bob, nil)
	assert.Equal(t, 200, code)
	assert.Equal(t, "Vote removed", rsp["msg"])

	code, rsp = request(t, "GET", albumPath(albumID), "", nil)
	require.Equal(t, 200, code)
	assert.EqualValues(t, 0, rsp["vote_count"])

	// votes left in place show up in my-votes
	code, _ = request(t, "POST", votePath("album", albumID), bob, nil)
	require.Equal(t, 200, code)
	code, _ = request(t, "POST", votePath("song", songID), bob, nil)
	require.Equal(t, 200, code)

	code, rsp = request(t, "GET", "/my-votes", bob, nil)
	require.Equal(t, 200, code)
	assert.Contains(t, rsp["voted_albums"], albumID)
	assert.Contains(t, rsp["voted_songs"], songID)

	code, _ = request(t, "GET", "/my-votes", "", nil)
	assert.Equal(t, 401, code)

	// admins vote like any other user
	code, rsp = request(t, "POST", votePath("album", albumID), alice, nil)
	assert.Equal(t, 200, code)
	assert.Equal(t, "Voted successfully", rsp["msg"])
	code, rsp = request(t, "GET", albumPath(albumID), "", nil)
	require.Equal(t, 200, code)
	assert.EqualValues(t, 2, rsp["vote_count"])

	// delete cascades, song lookups turn 404
	code, _ = request(t, "DELETE", albumPath(albumID), bob, nil)
	assert.Equal(t, 403, code)
	code, _ = request(t, "DELETE", albumPath(albumID), alice, nil)
	assert.Equal(t, 200, code)

	code, _ = request(t, "GET", albumPath(albumID), "", nil)
	assert.Equal(t, 404, code)
	code, _ = request(t, "GET", albumPath(albumID)+"/songs", "", nil)
	assert.Equal(t, 404, code)
	code, _ = request(t, "POST", votePath("song", songID), bob, nil)
	assert.Equal(t, 404, code)

	code, rsp = request(t, "GET", "/my-votes", bob, nil)
	require.Equal(t, 200, code)
	assert.NotContains(t, rsp["voted_albums"], albumID)
	assert.NotContains(t, rsp["voted_songs"], songID)
}

func TestAuthBeforeExistence(t *testing.T) {
	// the gate answers before any lookup, missing entities leak nothing
	code, _ := request(t, "DELETE", "/albums/99999", "", nil)
	assert.Equal(t, 401, code)

	code, _ = request(t, "DELETE", "/albums/99999", "not-a-token", nil)
	assert.Equal(t, 401, code)
}

func TestMalformedID(t *testing.T) {
	code, rsp := request(t, "GET", "/albums/abc", "", nil)
	assert.Equal(t, 404, code)
	assert.Equal(t, "Album not found", rsp["msg"])

	code, _ = request(t, "GET", "/albums/abc/songs", "", nil)
	assert.Equal(t, 404, code)
}

func TestProfile(t *testing.T) {
	token := login(t, "bob", "password2")
	code, rsp := request(t, "GET", "/profile", token, nil)
	require.Equal(t, 200, code)
	assert.Equal(t, "bob", rsp["username"])
	assert.Equal(t, false, rsp["isAdmin"])

	code, _ = request(t, "GET", "/profile", "", nil)
	assert.Equal(t, 401, code)
}

func albumPath(id float64) string {
	return "/albums/" + strconv.Itoa(int(id))
}

func votePath(kind string, id float64) string {
	return "/vote/" + kind + "/" + strconv.Itoa(int(id))
}
