package firestore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// DatastoreScope is the OAuth scope required by the Firestore API.
const DatastoreScope = "https://www.googleapis.com/auth/datastore"

// Config selects the Firestore project and optional service account credentials.
type Config struct {
	ProjectID       string
	CredentialsPath string
}

// NewClient creates a Firestore client. Without CredentialsPath the client uses
// Application Default Credentials, and FIRESTORE_EMULATOR_HOST is honoured by the SDK.
func NewClient(ctx context.Context, cfg Config) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore: project id is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("firestore: failed to read credentials file: %w", err)
		}
		ts, err := tokenSourceFromJSON(ctx, data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ts)
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: failed to create client: %w", err)
	}
	return client, nil
}

// tokenSourceFromJSON builds a client option from raw service account JSON.
func tokenSourceFromJSON(ctx context.Context, credentialsJSON []byte) (option.ClientOption, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, DatastoreScope)
	if err != nil {
		return nil, fmt.Errorf("firestore: unsupported credentials format: %w", err)
	}
	return option.WithTokenSource(jwtConfig.TokenSource(ctx)), nil
}

// Ping performs a cheap read to verify connectivity.
func Ping(ctx context.Context, client *firestore.Client, collection string) error {
	iter := client.Collection(collection).Limit(1).Documents(ctx)
	defer iter.Stop()
	_, err := iter.GetAll()
	return err
}
