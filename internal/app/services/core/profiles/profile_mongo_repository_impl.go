package profiles

import (
	"context"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/app/drivers/database"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: database.DurableCollection(db.Database(dbName), constvars.MongoCollectionProfiles),
	}
}

// Upsert replaces the whole stored profile, creating it when absent. There is
// no version check, concurrent writers are last-write-wins.
func (repo *ProfileMongoRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	filter := bson.M{"_id": profile.ID}
	_, err := repo.Collection.ReplaceOne(ctx, filter, profile, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrStorageUnavailable(err, "profile upsert")
	}
	return nil
}
