package database

import (
	"context"
	"fmt"
	"healthrecord-service/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"
)

func BuildMongoURI(mongoConfig config.MongoDB) string {
	if mongoConfig.URI != "" {
		return mongoConfig.URI
	}
	if mongoConfig.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", mongoConfig.Host, mongoConfig.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		mongoConfig.Username,
		mongoConfig.Password,
		mongoConfig.Host,
		mongoConfig.Port,
	)
}

// NewMongoDB opens the single client shared by every repository. It is
// created once on startup and disconnected by Bootstrap.Shutdown.
func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	serverSelectionTimeout := time.Duration(driverConfig.MongoDB.ServerSelectionTimeoutInSeconds) * time.Second
	dbOptions := options.Client().
		ApplyURI(BuildMongoURI(driverConfig.MongoDB)).
		SetServerSelectionTimeout(serverSelectionTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), serverSelectionTimeout+5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}
	log.Info("Successfully connected to mongo database",
		zap.String("database", driverConfig.MongoDB.DbName),
	)
	return client
}

// DurableCollection returns a collection whose writes are acknowledged only
// once journaled on a majority of members.
func DurableCollection(db *mongo.Database, name string) *mongo.Collection {
	journal := true
	writeConcern := &writeconcern.WriteConcern{W: "majority", Journal: &journal}
	return db.Collection(name, options.Collection().SetWriteConcern(writeConcern))
}
