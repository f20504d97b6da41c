package config

import (
	"github.com/samko5sam/webapps/utils/log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Config is one default config entry. Checker runs at startup after the
// config file is loaded, WarnDefault flags values that must not ship as-is.
type Config struct {
	Name        string
	Value       any
	WarnDefault bool
	Checker     func()
}

func init() {
	for _, v := range DefaultSetting {
		viper.SetDefault(v.Name, v.Value)
	}
}

var DefaultSetting = []*Config{
	{Name: "debug", Value: false, Checker: func() {
		if viper.GetBool("debug") {
			log.New().Warn("Debug mode is on, make it off when put into production")
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
	}},
	{Name: "log_file", Value: ""},
	{Name: "listen.address", Value: "0.0.0.0:8080"},
	{Name: "listen.allowhosts", Value: "", WarnDefault: true},
	{Name: "listen.ssl", Value: false, Checker: func() {
		if !viper.GetBool("listen.ssl") {
			log.New().Warn("ssl is disabled, enable it when put into production")
			return
		}
		if viper.GetString("listen.ssl_cert") == "" || viper.GetString("listen.ssl_key") == "" {
			log.New().Fatal("ssl_cert and ssl_key must be set when ssl is on")
		}
	}},
	{Name: "listen.ssl_cert", Value: ""},
	{Name: "listen.ssl_key", Value: ""},
	{Name: "database.type", Value: "sqlite"},
	{Name: "database.dsn", Value: "data.db"},
	{Name: "redis.address", Value: "127.0.0.1:6379"},
	{Name: "redis.password", Value: ""},
	{Name: "redis.db", Value: 0},
	{Name: "redis.timeout", Value: 10},
	{Name: "mongo.uri", Value: "mongodb://127.0.0.1:27017"},
	{Name: "mongo.database", Value: "joke_app"},
	{Name: "session.cookie", Value: "session_id"},
	{Name: "session.prefix", Value: "session_"},
	{Name: "session.expire", Value: 3600},
	{Name: "session.remember", Value: 5184000},
	{Name: "csrf.prefix", Value: "csrf_"},
	{Name: "csrf.expire", Value: 600},
	{Name: "token.secret", Value: "CHANGE_ME", WarnDefault: true, Checker: func() {
		if len(viper.GetString("token.secret")) < 8 {
			log.New().Warn("token.secret too short, make it longer")
		}
	}},
	{Name: "token.expire", Value: 86400},
	{Name: "recaptcha.enable", Value: true},
	{Name: "recaptcha.secret", Value: "", WarnDefault: true},
	{Name: "recaptcha.timeout", Value: 10},
	{Name: "recaptcha.cnmirror", Value: false},
}

// Check runs every config checker and warns on unchanged defaults.
func Check() {
	for _, v := range DefaultSetting {
		if v.WarnDefault && viper.Get(v.Name) == v.Value {
			log.New().Warnf("Setting %v has default value, please modify your config file for safety", v.Name)
		}
		if v.Checker != nil {
			v.Checker()
		}
	}
}
