package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/security"
	"github.com/samko5sam/webapps/utils/log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one of the web applications",
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func connectDB(tables ...any) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	var dbType db.DBType
	switch viper.GetString("database.type") {
	case "sqlite":
		dbType = db.DBType_Sqlite
	case "mysql":
		dbType = db.DBType_Mysql
	default:
		log.New().Fatalf("Database type %s not supported", viper.GetString("database.type"))
	}
	db.NewDB(ctx, &db.DBConfig{
		Type: dbType,
		DSN:  viper.GetString("database.dsn"),
	}, tables...)
	log.New().WithFields(log.F{
		"type": viper.GetString("database.type"),
		"dsn":  viper.GetString("database.dsn"),
	}).Info("Database connected")
}

func connectRedis() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	db.NewRedis(ctx, &db.RedisConfig{
		Address:  viper.GetString("redis.address"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})
	log.New().WithFields(log.F{
		"addr": viper.GetString("redis.address"),
	}).Info("Redis connected")
}

func connectSession() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	db.NewSession(ctx, &db.SessionConfig{
		RedisClient: db.GetRedis(),
		Prefix:      viper.GetString("session.prefix"),
	})
	log.New().WithFields(log.F{
		"prefix": viper.GetString("session.prefix"),
	}).Info("Redis session connected")
}

func connectMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	db.NewMongo(ctx, &db.MongoConfig{
		URI:      viper.GetString("mongo.uri"),
		Database: viper.GetString("mongo.database"),
	})
	log.New().WithFields(log.F{
		"database": viper.GetString("mongo.database"),
	}).Info("Mongodb connected")
}

// newEngine builds the shared gin engine: recovery, access log and security
// headers.
func newEngine() *gin.Engine {
	r := gin.New()
	r.ForwardedByClientIP = false // disable ip forward to prevent spoof
	r.Use(gin.Recovery())
	r.Use(log.GinMiddleware())
	r.Use(security.SecureMiddleware())
	return r
}

// serve blocks until SIGINT/SIGTERM, then drains requests.
func serve(name string, r *gin.Engine) {
	log.New().Infof("========== %v server start ==========", name)
	defer log.New().Infof("========== %v server end ==========", name)

	server := &http.Server{
		Addr:              viper.GetString("listen.address"),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		var err error
		if viper.GetBool("listen.ssl") {
			err = server.ListenAndServeTLS(viper.GetString("listen.ssl_cert"),
				viper.GetString("listen.ssl_key"))
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.NewEntry(err).Fatal("Server error")
		}
	}()
	log.New().Info("Listening on ", viper.GetString("listen.address"))

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.NewEntry(err).Error("Server shutdown error")
	}
}
