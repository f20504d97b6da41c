package api

import (
	"github.com/samko5sam/webapps/handler"
	"github.com/samko5sam/webapps/recaptcha"
	"github.com/samko5sam/webapps/security"
	"github.com/samko5sam/webapps/utils"
	"github.com/samko5sam/webapps/utils/log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type jokeAuthParam struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	Captcha  string `json:"captcha"`
	Remember bool   `json:"remember"`
}

func checkCaptcha(c *gin.Context, response string) bool {
	if !viper.GetBool("recaptcha.enable") {
		return true
	}
	if err := recaptcha.VerifyCAPTCHA(response, c.ClientIP()); err != nil {
		log.NewEntry(err).Warn("Captcha verification failed")
		return false
	}
	return true
}

func signInSession(c *gin.Context, id string, username string, remember bool) error {
	session, err := utils.GetSession(c)
	if err != nil {
		return err
	}
	session.Values["id"] = id
	session.Values["username"] = username
	if remember {
		session.Options.MaxAge = viper.GetInt("session.remember")
	} else {
		session.Options.MaxAge = viper.GetInt("session.expire")
	}
	return utils.SaveSession(c)
}

func APIJokeRegister(c *gin.Context) (int, error) {
	var param jokeAuthParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Username must be 3-50 and password 8-100 characters"})
		return 0, nil
	}
	if !checkCaptcha(c, param.Captcha) {
		c.JSON(400, gin.H{"msg": "Captcha verification failed. Please try again"})
		return 0, nil
	}

	user, err := handler.RegisterJokeUser(c.Request.Context(), param.Username, param.Password)
	if err == handler.ErrUsernameExist {
		c.JSON(409, gin.H{"msg": "Username already exists. Please choose another or log in"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}

	// registration signs the user in right away
	if err = signInSession(c, user.ID.Hex(), user.Username, false); err != nil {
		return 500, err
	}
	log.New().WithFields(log.F{
		"ip":       c.ClientIP(),
		"username": user.Username,
	}).Info("Joke user registered")
	c.JSON(201, gin.H{"msg": "Registration successful! You are now logged in"})
	return 0, nil
}

func APIJokeLogin(c *gin.Context) (int, error) {
	var param jokeAuthParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Username and password are required"})
		return 0, nil
	}
	if !checkCaptcha(c, param.Captcha) {
		c.JSON(400, gin.H{"msg": "Captcha verification failed. Please try again"})
		return 0, nil
	}
	logf := log.New().WithFields(log.F{
		"ip":       c.ClientIP(),
		"username": param.Username,
	})

	user, res, err := handler.CheckJokeUserPass(c.Request.Context(), param.Username, param.Password)
	if err != nil {
		return 500, err
	}
	if res != 0 {
		logf.Warn("Invalid username or password")
		c.JSON(401, gin.H{"msg": "Invalid username or password"})
		return 0, nil
	}
	if err = signInSession(c, user.ID.Hex(), user.Username, param.Remember); err != nil {
		return 500, err
	}
	logf.Info("Sign in success")
	c.JSON(200, gin.H{"msg": "Sign in success"})
	return 0, nil
}

func APIJokeLogout(c *gin.Context) (int, error) {
	session, err := utils.GetSession(c)
	if err != nil {
		return 500, err
	}
	session.Options.MaxAge = -1
	if err = utils.SaveSession(c); err != nil {
		return 500, err
	}
	c.JSON(200, gin.H{"msg": "You have been logged out"})
	return 0, nil
}

// APIJokeCSRFToken hands out a one-time token for the next mutating call.
func APIJokeCSRFToken(c *gin.Context) (int, error) {
	token, err := security.NewCSRFToken()
	if err != nil {
		return 500, err
	}
	c.SetCookie(security.CSRF_COOKIE, token, viper.GetInt("csrf.expire"), "/",
		"", viper.GetBool("listen.ssl"), false)
	c.JSON(200, gin.H{"token": token})
	return 0, nil
}

// APIJokeFeed returns random jokes for the infinite scroll.
func APIJokeFeed(c *gin.Context) (int, error) {
	var param struct {
		Size int64 `form:"size,default=5" binding:"min=1"`
	}
	if err := c.ShouldBindQuery(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Invalid size"})
		return 0, nil
	}
	jokes, err := handler.RandomJokes(c.Request.Context(), utils.Min(param.Size, 20))
	if err != nil {
		return 500, err
	}
	c.JSON(200, jokes)
	return 0, nil
}

func APIJokesByUser(c *gin.Context) (int, error) {
	jokes, err := handler.JokesByAuthor(c.Request.Context(), c.Param("username"))
	if err == handler.ErrJokeUserNotExist {
		c.JSON(404, gin.H{"msg": "User not found"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}
	c.JSON(200, jokes)
	return 0, nil
}

func APIPostJokes(c *gin.Context) (int, error) {
	var param struct {
		Jokes []string `json:"jokes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "No valid joke content provided"})
		return 0, nil
	}
	contents := handler.FilterJokes(param.Jokes)
	if len(contents) == 0 {
		c.JSON(400, gin.H{"msg": "No valid joke content provided"})
		return 0, nil
	}
	count, err := handler.PostJokes(c.Request.Context(),
		c.MustGet("username").(string), contents)
	if err != nil {
		return 500, err
	}
	c.JSON(201, gin.H{"msg": "Your jokes have been posted", "count": count})
	return 0, nil
}

func jokeIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		// malformed object ids are a caller bug, unlike numeric route ids
		c.JSON(400, gin.H{"msg": "Invalid joke ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func APIEditJoke(c *gin.Context) (int, error) {
	id, ok := jokeIDParam(c)
	if !ok {
		return 0, nil
	}
	var param struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Joke content cannot be empty"})
		return 0, nil
	}
	err := handler.UpdateJoke(c.Request.Context(), id,
		c.MustGet("username").(string), param.Content)
	switch err {
	case handler.ErrJokeNotExist:
		c.JSON(404, gin.H{"msg": "Joke not found"})
	case handler.ErrJokeNotAuthor:
		c.JSON(403, gin.H{"msg": "You are not authorized to edit this joke"})
	case nil:
		c.JSON(200, gin.H{"msg": "Joke updated successfully"})
	default:
		return 500, err
	}
	return 0, nil
}

func APIDeleteJoke(c *gin.Context) (int, error) {
	id, ok := jokeIDParam(c)
	if !ok {
		return 0, nil
	}
	err := handler.DeleteJoke(c.Request.Context(), id, c.MustGet("username").(string))
	switch err {
	case handler.ErrJokeNotExist:
		c.JSON(404, gin.H{"msg": "Joke not found"})
	case handler.ErrJokeNotAuthor:
		c.JSON(403, gin.H{"msg": "You are not authorized to delete this joke"})
	case nil:
		c.JSON(200, gin.H{"msg": "Joke deleted successfully"})
	default:
		return 500, err
	}
	return 0, nil
}

// JokeAPI is the route table of the joke board.
func JokeAPI() []*APIItem {
	return []*APIItem{
		{Path: "/register", Method: APIPost, Role: RoleGuest, Func: APIJokeRegister},
		{Path: "/login", Method: APIPost, Role: RoleGuest, Func: APIJokeLogin},
		{Path: "/logout", Method: APIPost, Role: RoleUser, Func: APIJokeLogout},
		{Path: "/token", Method: APIGet, Role: RoleGuest, Func: APIJokeCSRFToken},
		{Path: "/jokes/feed", Method: APIGet, Role: RoleGuest, Func: APIJokeFeed},
		{Path: "/jokes/user/:username", Method: APIGet, Role: RoleGuest, Func: APIJokesByUser},
		{Path: "/jokes", Method: APIPost, Role: RoleUser, Func: APIPostJokes},
		{Path: "/jokes/:id", Method: APIPut, Role: RoleUser, Func: APIEditJoke},
		{Path: "/jokes/:id", Method: APIDelete, Role: RoleUser, Func: APIDeleteJoke},
	}
}
