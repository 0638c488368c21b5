package prescriptions

import (
	"context"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/app/drivers/database"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: database.DurableCollection(db.Database(dbName), constvars.MongoCollectionPrescriptions),
	}
}

func (repo *PrescriptionMongoRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	prescriptions := make([]models.Prescription, 0)
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrStorageUnavailable(err, "prescription find")
	}
	err = cursor.All(ctx, &prescriptions)
	if err != nil {
		return nil, exceptions.ErrStorageUnavailable(err, "prescription iterate")
	}
	return prescriptions, nil
}

func (repo *PrescriptionMongoRepository) Create(ctx context.Context, prescription *models.Prescription) (string, error) {
	if prescription.ID.IsZero() {
		prescription.ID = primitive.NewObjectID()
	}
	_, err := repo.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrStorageUnavailable(err, "prescription insert")
	}
	return prescription.ID.Hex(), nil
}
