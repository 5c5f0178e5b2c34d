package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clinica/patient-admin/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts user. The UNIQUE constraint on login is the only guard
// against duplicate accounts.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, login, password_hash, role) VALUES (?, ?, ?, ?)`,
		user.Name, user.Login, user.PasswordHash, string(user.Role),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateLogin
		}
		return 0, domain.NewStoreError("insert user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.NewStoreError("insert user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, login, password_hash, role FROM users WHERE login = ?`, login,
	).Scan(&u.ID, &u.Name, &u.Login, &u.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.NewStoreError("select user", err)
	}
	u.Role = domain.Role(role)
	return &u, nil
}
