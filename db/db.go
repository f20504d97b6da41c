package db

import (
	"context"

	"github.com/samko5sam/webapps/utils/log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBType presents backend database type.
type DBType int

const (
	DBType_Sqlite DBType = iota // sqlite backend
	DBType_Mysql                // mysql backend
)

// DBConfig is connection config for database.
type DBConfig struct {
	Type DBType // backend database type
	DSN  string // connect dsn/file path
}

var dbClient *gorm.DB

// NewDB create new database connection and migrate tables, exit when facing
// any error.
func NewDB(ctx context.Context, conf *DBConfig, tables ...any) {
	var err error

	switch conf.Type {
	case DBType_Sqlite:
		dbClient, err = gorm.Open(sqlite.Open(conf.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent), // disable log
		})
	case DBType_Mysql:
		dbClient, err = gorm.Open(mysql.Open(conf.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}
	if err != nil {
		log.NewEntry(err).Fatal("Failed to connect database")
	}
	if err = dbClient.WithContext(ctx).AutoMigrate(tables...); err != nil {
		log.NewEntry(err).Fatal("Failed to migrate database")
	}
}

// GetDB returns database connection, exit when not connected.
func GetDB() *gorm.DB {
	if dbClient == nil {
		log.New().Fatal("DB not init")
	}
	return dbClient
}
