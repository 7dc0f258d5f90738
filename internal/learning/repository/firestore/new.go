package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"kodi-assistant/internal/learning/repository"
	pkgFirestore "kodi-assistant/pkg/firestore"
	"kodi-assistant/pkg/log"
)

// DefaultCollection holds one document per user, keyed by user id.
const DefaultCollection = "user_learning"

type implRepository struct {
	client     *firestore.Client
	collection string
	l          log.Logger
}

// New creates a new Firestore-backed Repository for the learning domain.
func New(client *firestore.Client, collection string, l log.Logger) repository.Repository {
	if client == nil {
		panic("learning/repository/firestore: client is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &implRepository{client: client, collection: collection, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("learning/repository/firestore.%s", method)
}

func (r *implRepository) Ping(ctx context.Context) error {
	return pkgFirestore.Ping(ctx, r.client, r.collection)
}
