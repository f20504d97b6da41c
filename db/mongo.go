package db

import (
	"context"

	"github.com/samko5sam/webapps/utils/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig is connection config for mongodb.
type MongoConfig struct {
	URI      string // mongodb connection uri
	Database string // database name
}

var mongoClient *mongo.Database

// NewMongo create new mongodb connection and ensure the unique username
// index, exit when facing any error.
func NewMongo(ctx context.Context, conf *MongoConfig) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.URI))
	if err != nil {
		log.NewEntry(err).Fatal("Failed to connect mongodb")
	}
	if err = client.Ping(ctx, nil); err != nil {
		log.NewEntry(err).Fatal("Mongodb connect error")
	}
	mongoClient = client.Database(conf.Database)

	_, err = mongoClient.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.NewEntry(err).Fatal("Failed to create username index")
	}
}

// GetMongo returns mongodb database, exit when not connected.
func GetMongo() *mongo.Database {
	if mongoClient == nil {
		log.New().Fatal("Mongo not init")
	}
	return mongoClient
}
