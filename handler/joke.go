package handler

import (
	"context"
	"strings"

	"github.com/samko5sam/webapps/db"
	"github.com/samko5sam/webapps/models"
	"github.com/samko5sam/webapps/utils/hash"

	"github.com/ztrue/tracerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrJokeNotExist     = tracerr.New("joke does not exist")
	ErrJokeUserNotExist = tracerr.New("user does not exist")
	ErrJokeNotAuthor    = tracerr.New("not the joke author")
)

func jokeColl() *mongo.Collection {
	return db.GetMongo().Collection("jokes")
}

func jokeUserColl() *mongo.Collection {
	return db.GetMongo().Collection("users")
}

// RegisterJokeUser creates a new joke board account. The unique username
// index decides concurrent duplicates.
func RegisterJokeUser(ctx context.Context, username string, password string) (*models.JokeUser, error) {
	encoded, err := hash.Generate(password, hash.DefaultArgon2Params)
	if err != nil {
		return nil, err
	}
	user := &models.JokeUser{
		Username: username,
		Password: encoded,
	}
	ret, err := jokeUserColl().InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrUsernameExist
	} else if err != nil {
		return nil, tracerr.Wrap(err)
	}
	user.ID = ret.InsertedID.(primitive.ObjectID)
	return user, nil
}

// CheckJokeUserPass verifies joke board credential.
//
// return 0 when successful, 1 when user not found, 2 when password mismatch.
// Callers must not expose the difference between 1 and 2.
func CheckJokeUserPass(ctx context.Context, username string, password string) (*models.JokeUser, int, error) {
	var rec models.JokeUser
	err := jokeUserColl().FindOne(ctx, bson.M{"username": username}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, 1, nil
	} else if err != nil {
		return nil, -1, tracerr.Wrap(err)
	}
	ok, err := hash.Verify(password, rec.Password)
	if err != nil {
		return nil, -1, err
	}
	if !ok {
		return nil, 2, nil
	}
	return &rec, 0, nil
}

// RandomJokes samples size random jokes, an empty collection yields an empty
// slice.
func RandomJokes(ctx context.Context, size int64) ([]*models.Joke, error) {
	cur, err := jokeColl().Aggregate(ctx, mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": size}}},
	})
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	ret := []*models.Joke{}
	if err = cur.All(ctx, &ret); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return ret, nil
}

// JokesByAuthor returns all jokes of one author, newest first.
func JokesByAuthor(ctx context.Context, username string) ([]*models.Joke, error) {
	if err := jokeUserColl().FindOne(ctx, bson.M{"username": username}).
		Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrJokeUserNotExist
		}
		return nil, tracerr.Wrap(err)
	}
	cur, err := jokeColl().Find(ctx, bson.M{"author_username": username},
		options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	ret := []*models.Joke{}
	if err = cur.All(ctx, &ret); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return ret, nil
}

// FilterJokes trims the submitted contents and drops empty ones.
func FilterJokes(contents []string) []string {
	ret := []string{}
	for _, v := range contents {
		if v = strings.TrimSpace(v); v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}

// PostJokes bulk inserts jokes for the author, returns the inserted count.
func PostJokes(ctx context.Context, author string, contents []string) (int, error) {
	docs := make([]any, 0, len(contents))
	for _, v := range contents {
		docs = append(docs, &models.Joke{
			Content:        v,
			AuthorUsername: author,
		})
	}
	if len(docs) == 0 {
		return 0, nil
	}
	ret, err := jokeColl().InsertMany(ctx, docs)
	if err != nil {
		return 0, tracerr.Wrap(err)
	}
	return len(ret.InsertedIDs), nil
}

// UpdateJoke edits one joke, only the author may edit.
func UpdateJoke(ctx context.Context, id primitive.ObjectID, author string, content string) error {
	var joke models.Joke
	err := jokeColl().FindOne(ctx, bson.M{"_id": id}).Decode(&joke)
	if err == mongo.ErrNoDocuments {
		return ErrJokeNotExist
	} else if err != nil {
		return tracerr.Wrap(err)
	}
	if joke.AuthorUsername != author {
		return ErrJokeNotAuthor
	}
	_, err = jokeColl().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content}})
	return tracerr.Wrap(err)
}

// DeleteJoke removes one joke, only the author may delete.
func DeleteJoke(ctx context.Context, id primitive.ObjectID, author string) error {
	var joke models.Joke
	err := jokeColl().FindOne(ctx, bson.M{"_id": id}).Decode(&joke)
	if err == mongo.ErrNoDocuments {
		return ErrJokeNotExist
	} else if err != nil {
		return tracerr.Wrap(err)
	}
	if joke.AuthorUsername != author {
		return ErrJokeNotAuthor
	}
	_, err = jokeColl().DeleteOne(ctx, bson.M{"_id": id})
	return tracerr.Wrap(err)
}
