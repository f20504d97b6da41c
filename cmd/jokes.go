package cmd

import (
	"net/http"

	"github.com/samko5sam/webapps/api"
	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/recaptcha"
	"github.com/samko5sam/webapps/security"

	"github.com/gorilla/sessions"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var jokesCmd = &cobra.Command{
	Use:   "jokes",
	Short: "Run the joke board",
	Run:   runJokes,
}

func init() {
	runCmd.AddCommand(jokesCmd)
}

func runJokes(cmd *cobra.Command, args []string) {
	connectRedis()
	connectSession()
	connectMongo()
	if viper.GetBool("recaptcha.enable") {
		recaptcha.Init()
	}

	db.GetSession().Options(sessions.Options{
		Path:     "/",
		MaxAge:   viper.GetInt("session.expire"),
		Secure:   viper.GetBool("listen.ssl"),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	r := newEngine()
	r.Use(security.CSRFMiddleware())
	api.AddAPI(r.Group("/"), api.AuthSession, api.JokeAPI())
	serve("jokes", r)
}
