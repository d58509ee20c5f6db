package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createTracksIndexes()
	createWaypointsIndexes()
}

func createTracksIndexes() {
	tracksCollection := GetCollection("tracks")
	tracksIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "geometry", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{{Key: "datasource.dataset", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := tracksCollection.Indexes().CreateMany(context.Background(), tracksIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createWaypointsIndexes() {
	waypointsCollection := GetCollection("waypoints")
	waypointsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2d"}},
		},
	}

	opts := options.CreateIndexes()
	_, err := waypointsCollection.Indexes().CreateMany(context.Background(), waypointsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
