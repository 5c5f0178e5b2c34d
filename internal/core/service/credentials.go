package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinica/patient-admin/internal/core/domain"
	"github.com/clinica/patient-admin/internal/core/ports"
)

// maxPasswordBytes is the longest password bcrypt will hash.
const maxPasswordBytes = 72

// Credentials is the credential store: it owns password hashing and is the
// only component that reads or writes password hashes.
type Credentials struct {
	repo ports.UserRepository
	cost int
}

// NewCredentials wraps repo. A cost outside bcrypt's range falls back to
// bcrypt.DefaultCost.
func NewCredentials(repo ports.UserRepository, cost int) *Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Credentials{repo: repo, cost: cost}
}

// CreateUser hashes password and persists a new account. An empty role
// defaults to staff.
func (c *Credentials) CreateUser(ctx context.Context, name, login, password string, role domain.Role) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("create user: %w: login and password are required", domain.ErrInvalidInput)
	}
	if role == "" {
		role = domain.RoleStaff
	}
	if !role.Valid() {
		return nil, fmt.Errorf("create user: %w: unknown role %q", domain.ErrInvalidInput, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("create user: %w: password must be at most %d bytes", domain.ErrInvalidInput, maxPasswordBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("create user: hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Login:        login,
		PasswordHash: string(hash),
		Role:         role,
	}
	id, err := c.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return user, nil
}

// FindByLogin matches login exactly and returns domain.ErrUserNotFound for
// unknown logins.
func (c *Credentials) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := c.repo.FindByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Verify checks password against the stored hash of user.
func (c *Credentials) Verify(user *domain.User, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
