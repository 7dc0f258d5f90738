package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	repo "kodi-assistant/internal/learning/repository"
	"kodi-assistant/internal/model"
)

// learningDoc is the stored shape of a learning profile.
type learningDoc struct {
	Topics           []string       `firestore:"topics"`
	Preferences      map[string]any `firestore:"preferences"`
	InteractionCount int64          `firestore:"interactionCount"`
	CreatedAt        time.Time      `firestore:"createdAt"`
	LastUpdated      time.Time      `firestore:"lastUpdated"`
}

func (d learningDoc) toModel(userID string) model.LearningRecord {
	return model.LearningRecord{
		UserID:           userID,
		Topics:           d.Topics,
		Preferences:      d.Preferences,
		InteractionCount: int(d.InteractionCount),
		CreatedAt:        d.CreatedAt,
		LastUpdated:      d.LastUpdated,
	}
}

func newLearningDoc(r model.LearningRecord) learningDoc {
	doc := learningDoc{
		Topics:           r.Topics,
		Preferences:      r.Preferences,
		InteractionCount: int64(r.InteractionCount),
		CreatedAt:        r.CreatedAt,
		LastUpdated:      r.LastUpdated,
	}
	if doc.Topics == nil {
		doc.Topics = []string{}
	}
	if doc.Preferences == nil {
		doc.Preferences = map[string]any{}
	}
	return doc
}

// GetLearning returns a zero value record when userID has no profile.
func (r *implRepository) GetLearning(ctx context.Context, userID string) (model.LearningRecord, error) {
	snap, err := r.client.Collection(r.collection).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.LearningRecord{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToGet
	}

	var doc learningDoc
	if err := snap.DataTo(&doc); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToGet
	}
	return doc.toModel(userID), nil
}

// UpsertLearning runs the read-modify-write in a Firestore transaction.
// The SDK retries on contention, which re-invokes opt.Apply.
func (r *implRepository) UpsertLearning(ctx context.Context, opt repo.UpsertLearningOptions) (model.LearningRecord, error) {
	ref := r.client.Collection(r.collection).Doc(opt.UserID)

	var result model.LearningRecord
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var (
			existing model.LearningRecord
			found    bool
		)

		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return err
		default:
			var doc learningDoc
			if err := snap.DataTo(&doc); err != nil {
				return err
			}
			existing, found = doc.toModel(opt.UserID), true
		}

		next := opt.Apply(existing, found)
		next.UserID = opt.UserID
		result = next
		return tx.Set(ref, newLearningDoc(next))
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertLearning"), err)
		return model.LearningRecord{}, repo.ErrFailedToUpsert
	}

	return result, nil
}
