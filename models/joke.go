package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Joke lives in the mongo "jokes" collection.
type Joke struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content        string             `bson:"content" json:"content"`
	AuthorUsername string             `bson:"author_username" json:"author_username"`
}

// JokeUser lives in the mongo "users" collection, username has a unique index.
type JokeUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
}
