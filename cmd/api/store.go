package main

import (
	"context"
	"fmt"

	"kodi-assistant/config"
	conversationRepo "kodi-assistant/internal/conversation/repository"
	conversationFirestore "kodi-assistant/internal/conversation/repository/firestore"
	conversationPostgre "kodi-assistant/internal/conversation/repository/postgre"
	conversationSqlite "kodi-assistant/internal/conversation/repository/sqlite"
	learningRepo "kodi-assistant/internal/learning/repository"
	learningFirestore "kodi-assistant/internal/learning/repository/firestore"
	learningPostgre "kodi-assistant/internal/learning/repository/postgre"
	learningSqlite "kodi-assistant/internal/learning/repository/sqlite"
	pkgFirestore "kodi-assistant/pkg/firestore"
	"kodi-assistant/pkg/log"
	"kodi-assistant/pkg/postgres"
	pkgSqlite "kodi-assistant/pkg/sqlite"
)

// stores bundles the repositories of the selected driver.
type stores struct {
	learning     learningRepo.Repository
	conversation conversationRepo.Repository
	close        func()
}

// openStores connects the document store chosen by cfg.Store.Driver.
func openStores(ctx context.Context, cfg *config.Config, l log.Logger) (stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverFirestore:
		client, err := pkgFirestore.NewClient(ctx, pkgFirestore.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsPath: cfg.Firestore.CredentialsPath,
		})
		if err != nil {
			return stores{}, err
		}
		return stores{
			learning:     learningFirestore.New(client, cfg.Firestore.LearningCollection, l),
			conversation: conversationFirestore.New(client, cfg.Firestore.ConversationsCollection, l),
			close:        func() { _ = client.Close() },
		}, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, postgres.Config{
			URL:      cfg.Postgres.URL,
			MaxConns: cfg.Postgres.MaxConns,
			MinConns: cfg.Postgres.MinConns,
		})
		if err != nil {
			return stores{}, err
		}
		if cfg.Postgres.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return stores{}, err
			}
		}
		return stores{
			learning:     learningPostgre.New(pool, l),
			conversation: conversationPostgre.New(pool, l),
			close:        pool.Close,
		}, nil

	case config.StoreDriverSQLite:
		db, err := pkgSqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return stores{}, err
		}
		return stores{
			learning:     learningSqlite.New(db, l),
			conversation: conversationSqlite.New(db, l),
			close:        func() { _ = db.Close() },
		}, nil

	default:
		return stores{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
