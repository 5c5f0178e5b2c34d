package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinica/patient-admin/internal/core/domain"
)

type UserRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID           int64  `bson:"_id"`
	Name         string `bson:"name"`
	Login        string `bson:"login"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
}

// Create inserts user. An id consumed by a rejected duplicate is not reused.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionUsers)
	if err != nil {
		return 0, domain.NewStoreError("insert user", err)
	}

	_, err = r.col.InsertOne(ctx, userDoc{
		ID:           id,
		Name:         user.Name,
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, domain.ErrDuplicateLogin
		}
		return 0, domain.NewStoreError("insert user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"login": login}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.NewStoreError("find user", err)
	}

	return &domain.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Login:        doc.Login,
		PasswordHash: doc.PasswordHash,
		Role:         domain.Role(doc.Role),
	}, nil
}
