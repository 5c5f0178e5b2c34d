package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinica/patient-admin/internal/core/domain"
)

func openTempDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open("  ")
	assert.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clinic.db")
	db, err := Open(path)
	require.NoError(t, err)
	_, err = NewUserRepository(db).Create(context.Background(), &domain.User{Login: "admin", PasswordHash: "h", Role: domain.RoleAdmin})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var applied int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	assert.Equal(t, 2, applied)

	u, err := NewUserRepository(db).FindByLogin(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(openTempDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.User{Name: "Ana", Login: "ana1", PasswordHash: "$2a$04$hash", Role: domain.RoleStaff})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := repo.FindByLogin(ctx, "ana1")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "$2a$04$hash", got.PasswordHash)
	assert.Equal(t, domain.RoleStaff, got.Role)
}

func TestUsersRoleDefaultsToStaff(t *testing.T) {
	t.Parallel()

	db := openTempDB(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `INSERT INTO users (name, login, password_hash) VALUES ('Ana', 'ana1', 'h')`)
	require.NoError(t, err)

	got, err := NewUserRepository(db).FindByLogin(ctx, "ana1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, got.Role)
}

func TestUserRepositoryDuplicateLogin(t *testing.T) {
	t.Parallel()

	db := openTempDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "Ana", Login: "ana1", PasswordHash: "a", Role: domain.RoleStaff})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Name: "Other", Login: "ana1", PasswordHash: "b", Role: domain.RoleAdmin})
	require.ErrorIs(t, err, domain.ErrDuplicateLogin)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestUserRepositoryNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewUserRepository(openTempDB(t)).FindByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPatientRepositoryLifecycle(t *testing.T) {
	t.Parallel()

	repo := NewPatientRepository(openTempDB(t))
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	id, err := repo.Create(ctx, &domain.Patient{Name: "Maria", Sex: "F", BirthDate: "1980-05-02", Notes: "n", Status: domain.StatusInCare})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &domain.Patient{Name: "João", Status: domain.StatusInCare})
	require.NoError(t, err)
	assert.Greater(t, second, id)

	n, err := repo.UpdateStatus(ctx, id, domain.StatusDischarged)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Patient{ID: id, Name: "Maria", Sex: "F", BirthDate: "1980-05-02", Notes: "n", Status: domain.StatusDischarged}, *got)

	n, err = repo.Update(ctx, &domain.Patient{ID: id, Name: "Maria S", Sex: "F", BirthDate: "1980-05-03", Status: "anything-goes"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.PatientStatus("anything-goes"), got.Status)
	assert.Equal(t, "", got.Notes)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, second, list[1].ID)
}

func TestPatientRepositoryMissingID(t *testing.T) {
	t.Parallel()

	repo := NewPatientRepository(openTempDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)

	n, err := repo.UpdateStatus(ctx, 404, domain.StatusDischarged)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Update(ctx, &domain.Patient{ID: 404, Name: "x"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPatientRepositoryStoreFailure(t *testing.T) {
	t.Parallel()

	db := openTempDB(t)
	repo := NewPatientRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.List(context.Background())
	assert.True(t, errors.Is(err, domain.ErrStoreFailure), "got %v", err)
}

func TestAuditRepositoryInsert(t *testing.T) {
	t.Parallel()

	db := openTempDB(t)
	repo := NewAuditRepository(db)
	at := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	err := repo.Insert(context.Background(), &domain.AuditEvent{
		ID:        "evt-1",
		PatientID: 7,
		Action:    domain.AuditDischarged,
		Status:    domain.StatusDischarged,
		ActorID:   2,
		ActorName: "Ana",
		At:        at,
	})
	require.NoError(t, err)

	var (
		action string
		stored int64
	)
	require.NoError(t, db.QueryRow("SELECT action, at FROM patient_events WHERE id = ?", "evt-1").Scan(&action, &stored))
	assert.Equal(t, string(domain.AuditDischarged), action)
	assert.Equal(t, at.UnixMilli(), stored)

	err = repo.Insert(context.Background(), &domain.AuditEvent{ID: "evt-1", At: at})
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
}

func TestExtractUp(t *testing.T) {
	t.Parallel()

	content := "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;\n"
	assert.Equal(t, "\nCREATE TABLE a (id INTEGER);\n", extractUp(content))
	assert.Equal(t, "SELECT 1;", extractUp("SELECT 1;"))
}

func TestApplyMigrationsSkipsApplied(t *testing.T) {
	t.Parallel()

	db := openTempDB(t)
	fsys := fstest.MapFS{
		"010_extra.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE extra (id INTEGER);\n")},
		"README.md":     {Data: []byte("ignored")},
	}

	require.NoError(t, applyMigrations(db, fsys, "."))
	require.NoError(t, applyMigrations(db, fsys, "."))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE name = ?", "010_extra.sql").Scan(&count))
	assert.Equal(t, 1, count)
}
