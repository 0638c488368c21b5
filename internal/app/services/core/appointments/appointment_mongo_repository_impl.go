package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: database.DurableCollection(db.Database(dbName), constvars.MongoCollectionAppointments),
	}
}

// FindAll returns every appointment in insertion order. Ids are generated by
// a single store process, so ascending _id is creation order.
func (repo *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrStorageUnavailable(err, "appointment find")
	}
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrStorageUnavailable(err, "appointment iterate")
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	_, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrStorageUnavailable(err, "appointment insert")
	}
	return appointment.ID.Hex(), nil
}
