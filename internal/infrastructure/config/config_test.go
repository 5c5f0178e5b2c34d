package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "clinic.db", cfg.SQLite.Path)
	assert.Equal(t, BackendMemory, cfg.Session.Backend)
	assert.Zero(t, cfg.Session.TTL)
	assert.False(t, cfg.BootstrapRoute)
	assert.Equal(t, "admin123", cfg.BootstrapAdminSecret)
	assert.False(t, cfg.StrictPatientStatus)
	assert.Equal(t, 2, cfg.AuditWorkers)
	assert.False(t, cfg.IsProduction())
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                    "8081",
		"ENV":                     "production",
		"STORE_DRIVER":            "mongo",
		"MONGO_DB":                "clinic_prod",
		"SESSION_BACKEND":         "redis",
		"SESSION_TTL":             "8h",
		"SESSION_SECRET":          "s3cret",
		"COOKIE_SECURE":           "true",
		"BOOTSTRAP_ROUTE_ENABLED": "true",
		"STRICT_PATIENT_STATUS":   "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "clinic_prod", cfg.Mongo.Database)
	assert.Equal(t, BackendRedis, cfg.Session.Backend)
	assert.Equal(t, 8*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.True(t, cfg.Session.Secure)
	assert.True(t, cfg.BootstrapRoute)
	assert.True(t, cfg.StrictPatientStatus)
}

func TestLoadWith_RejectsUnknownDriver(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER": "postgres",
	}))
	assert.ErrorContains(t, err, "STORE_DRIVER")

	_, err = LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "cookie",
	}))
	assert.ErrorContains(t, err, "SESSION_BACKEND")
}
