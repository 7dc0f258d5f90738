package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"kodi-assistant/internal/conversation/repository"
	pkgFirestore "kodi-assistant/pkg/firestore"
	"kodi-assistant/pkg/log"
)

// DefaultCollection holds one document per chat turn with an auto-generated id.
const DefaultCollection = "conversations"

type implRepository struct {
	client     *firestore.Client
	collection string
	l          log.Logger
}

// New creates a new Firestore-backed Repository for the conversation domain.
// Listing needs a composite index on (userId ASC, timestamp DESC).
func New(client *firestore.Client, collection string, l log.Logger) repository.Repository {
	if client == nil {
		panic("conversation/repository/firestore: client is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &implRepository{client: client, collection: collection, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/firestore.%s", method)
}

func (r *implRepository) Ping(ctx context.Context) error {
	return pkgFirestore.Ping(ctx, r.client, r.collection)
}
