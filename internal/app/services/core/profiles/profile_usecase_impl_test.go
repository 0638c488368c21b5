package profiles

import (
	"context"
	"errors"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfileRepository struct {
	stored    map[string]models.Profile
	upsertErr error
	calls     int
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{stored: make(map[string]models.Profile)}
}

func (f *fakeProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	f.calls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.stored[profile.ID] = *profile
	return nil
}

type publishedEvent struct {
	eventType string
	data      interface{}
}

type fakeEventPublisher struct {
	events     []publishedEvent
	publishErr error
}

func (f *fakeEventPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, publishedEvent{eventType: eventType, data: data})
	return nil
}

func (f *fakeEventPublisher) Close() error { return nil }

func TestProfileUsecase_SaveProfile(t *testing.T) {
	t.Run("Second Save Replaces First", func(t *testing.T) {
		repo := newFakeProfileRepository()
		usecase := NewProfileUsecase(repo, nil, zap.NewNop())

		err := usecase.SaveProfile(context.Background(), &requests.Profile{Name: "Ann", Age: "34", Conditions: "asthma"})
		require.NoError(t, err)
		err = usecase.SaveProfile(context.Background(), &requests.Profile{Name: "Ann", Age: "35"})
		require.NoError(t, err)

		require.Len(t, repo.stored, 1)
		stored := repo.stored[constvars.MongoProfileSingletonID]
		assert.Equal(t, "35", stored.Age)
		assert.Equal(t, "", stored.Conditions)
	})

	t.Run("Empty Fields Are Stored As Given", func(t *testing.T) {
		repo := newFakeProfileRepository()
		usecase := NewProfileUsecase(repo, nil, zap.NewNop())

		err := usecase.SaveProfile(context.Background(), &requests.Profile{})
		require.NoError(t, err)
		assert.Equal(t, models.Profile{ID: constvars.MongoProfileSingletonID}, repo.stored[constvars.MongoProfileSingletonID])
	})

	t.Run("Storage Failure Is Returned", func(t *testing.T) {
		repo := newFakeProfileRepository()
		repo.upsertErr = exceptions.ErrStorageUnavailable(errors.New("no primary"), "profile upsert")
		publisher := &fakeEventPublisher{}
		usecase := NewProfileUsecase(repo, publisher, zap.NewNop())

		err := usecase.SaveProfile(context.Background(), &requests.Profile{Name: "Ann", Age: "34"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
		assert.Empty(t, publisher.events)
	})

	t.Run("Event Published After Write", func(t *testing.T) {
		repo := newFakeProfileRepository()
		publisher := &fakeEventPublisher{}
		usecase := NewProfileUsecase(repo, publisher, zap.NewNop())

		request := &requests.Profile{Name: "Ann", Age: "34"}
		err := usecase.SaveProfile(context.Background(), request)
		require.NoError(t, err)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, constvars.EventTypeProfileSaved, publisher.events[0].eventType)
		assert.Equal(t, request, publisher.events[0].data)
	})

	t.Run("Event Failure Does Not Fail Save", func(t *testing.T) {
		repo := newFakeProfileRepository()
		publisher := &fakeEventPublisher{publishErr: errors.New("broker down")}
		usecase := NewProfileUsecase(repo, publisher, zap.NewNop())

		err := usecase.SaveProfile(context.Background(), &requests.Profile{Name: "Ann", Age: "34"})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.calls)
	})
}
