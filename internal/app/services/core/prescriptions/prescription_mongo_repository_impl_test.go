package prescriptions

import (
	"context"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestPrescriptionMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("FindAll Sorts By Id", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Amoxicillin"}, {Key: "image", Value: "file:///photos/rx-1.jpg"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Ibuprofen"}, {Key: "image", Value: ""}},
		)
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, end)
		repo := &PrescriptionMongoRepository{Collection: mt.Coll}

		result, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, result, 2)
		assert.Equal(mt, "Amoxicillin", result[0].Name)
		assert.Equal(mt, "Ibuprofen", result[1].Name)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)
		assert.EqualValues(mt, 1, started.Command.Lookup("sort", "_id").AsInt64())
	})

	mt.Run("FindAll Empty Collection", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		repo := &PrescriptionMongoRepository{Collection: mt.Coll}

		result, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, result)
		assert.Len(mt, result, 0)
	})

	mt.Run("Create Returns Generated Id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := &PrescriptionMongoRepository{Collection: mt.Coll}

		prescription := &models.Prescription{Name: "Amoxicillin", Image: "file:///photos/rx-1.jpg"}
		id, err := repo.Create(context.Background(), prescription)
		require.NoError(mt, err)
		assert.Equal(mt, prescription.ID.Hex(), id)
		assert.False(mt, prescription.ID.IsZero())
	})

	mt.Run("Create Error Maps To Storage Unavailable", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "write rejected",
		}))
		repo := &PrescriptionMongoRepository{Collection: mt.Coll}

		_, err := repo.Create(context.Background(), &models.Prescription{Name: "Amoxicillin", Image: "file:///photos/rx-1.jpg"})
		require.Error(mt, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(mt, err, &customErr)
		assert.Equal(mt, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})
}
