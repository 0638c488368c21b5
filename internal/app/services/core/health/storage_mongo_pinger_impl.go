package health

import (
	"context"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type storageMongoPinger struct {
	client *mongo.Client
}

func NewStorageMongoPinger(client *mongo.Client) contracts.StoragePinger {
	return &storageMongoPinger{client: client}
}

// Ping targets the primary, a secondary alone cannot acknowledge writes.
func (p *storageMongoPinger) Ping(ctx context.Context) error {
	err := p.client.Ping(ctx, readpref.Primary())
	if err != nil {
		return exceptions.ErrStorageUnavailable(err, "ping")
	}
	return nil
}
