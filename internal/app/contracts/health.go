package contracts

import "context"

type StoragePinger interface {
	Ping(ctx context.Context) error
}
