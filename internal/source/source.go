// Package source defines the snapshot contracts the classification engine
// consumes and their local-file implementations. Cloud-backed sources live
// in internal/aws.
package source

import (
	"context"

	"github.com/cloudopsio/catalogwatch/internal/catalog"
)

// Products returns one best-effort snapshot of provisioned products. A
// failed fetch is an error; callers degrade to an empty snapshot.
type Products interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
}

// Roster returns the authorized-user list for one cycle.
type Roster interface {
	FetchRoster(ctx context.Context) ([]catalog.User, error)
}
