package mongo

import (
	"context"
	"time"

	"wakens/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// New connects to the booking document store and returns a handle on the
// configured database.
func New(config *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.DB.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		panic(err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping MongoDB")
		panic(err)
	}

	log.Info().
		Str("database", config.DB.Mongo.Database).
		Msg("Connected to MongoDB")

	return client.Database(config.DB.Mongo.Database)
}
