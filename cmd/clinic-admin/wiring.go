package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinica/patient-admin/internal/core/ports"
	"github.com/clinica/patient-admin/internal/infrastructure/config"
	"github.com/clinica/patient-admin/internal/infrastructure/db/mongo"
	rediskv "github.com/clinica/patient-admin/internal/infrastructure/db/redis"
	"github.com/clinica/patient-admin/internal/infrastructure/db/sqlite"
	"github.com/clinica/patient-admin/internal/infrastructure/http/handlers"
	"github.com/clinica/patient-admin/internal/infrastructure/session"
	"github.com/clinica/patient-admin/pkg/logger"
)

// stores groups the repositories of the configured storage driver.
type stores struct {
	users    ports.UserRepository
	patients ports.PatientRepository
	audit    ports.AuditRepository
	ping     handlers.Pinger
	close    func()
}

func loadConfig(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "clinic-admin",
	})
	return cfg, log, nil
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
		return &stores{
			users:    mongo.NewUserRepository(db),
			patients: mongo.NewPatientRepository(db),
			audit:    mongo.NewAuditRepository(db),
			ping: handlers.PingFunc(func(ctx context.Context) error {
				return client.Ping(ctx, nil)
			}),
			close: func() { _ = client.Disconnect(context.Background()) },
		}, nil

	default:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLite.Path).Msg("opened SQLite store")
		return &stores{
			users:    sqlite.NewUserRepository(db),
			patients: sqlite.NewPatientRepository(db),
			audit:    sqlite.NewAuditRepository(db),
			ping:     handlers.PingFunc(db.PingContext),
			close:    func() { _ = db.Close() },
		}, nil
	}
}

func openSessions(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SessionStore, func(), error) {
	if cfg.Session.Backend != config.BackendRedis {
		return session.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	}

	client, err := rediskv.Connect(ctx, rediskv.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis session store")
	return rediskv.NewSessionStore(client, cfg.Session.TTL), func() { _ = client.Close() }, nil
}
