package api

import (
	"github.com/samko5sam/webapps/handler"
	"github.com/samko5sam/webapps/security"
	"github.com/samko5sam/webapps/utils/log"

	"github.com/gin-gonic/gin"
)

type registerParam struct {
	Username string `json:"username" binding:"required,max=80"`
	Password string `json:"password" binding:"required"`
}

func APIRegister(c *gin.Context) (int, error) {
	var param registerParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Username and password are required"})
		return 0, nil
	}

	user, err := handler.Register(param.Username, param.Password)
	if err == handler.ErrUsernameExist {
		c.JSON(409, gin.H{"msg": "Username already exists"})
		return 0, nil
	} else if err != nil {
		return 500, err
	}

	log.New().WithFields(log.F{
		"ip":       c.ClientIP(),
		"username": user.Username,
		"admin":    user.IsAdmin,
	}).Info("User registered")
	c.JSON(201, gin.H{"msg": "User created successfully"})
	return 0, nil
}

func APILogin(c *gin.Context) (int, error) {
	var param registerParam
	if err := c.ShouldBindJSON(&param); err != nil {
		c.JSON(400, gin.H{"msg": "Username and password are required"})
		return 0, nil
	}
	logf := log.New().WithFields(log.F{
		"ip":       c.ClientIP(),
		"username": param.Username,
	})

	user, res, err := handler.CheckUserPass(param.Username, param.Password)
	if err != nil {
		return 500, err
	}
	if res != 0 {
		logf.Warn("Invalid username or password")
		c.JSON(401, gin.H{"msg": "Bad username or password"})
		return 0, nil
	}

	token, err := security.IssueToken(user.ID, user.IsAdmin)
	if err != nil {
		return 500, err
	}
	logf.Info("Sign in success")
	c.JSON(200, gin.H{
		"access_token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"isAdmin":  user.IsAdmin,
		},
	})
	return 0, nil
}

func APIProfile(c *gin.Context) (int, error) {
	user, err := handler.GetUser(UID(c))
	if err != nil {
		return 500, err
	}
	if user == nil {
		// token outlived the account
		c.JSON(401, gin.H{"msg": "Missing or invalid token"})
		return 0, nil
	}
	c.JSON(200, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"isAdmin":  user.IsAdmin,
	})
	return 0, nil
}
