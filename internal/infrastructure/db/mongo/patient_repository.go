package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinica/patient-admin/internal/core/domain"
)

type PatientRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{db: db, col: db.Collection(collectionPatients)}
}

// Create inserts p under a fresh integer id.
func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionPatients)
	if err != nil {
		return 0, domain.NewStoreError("insert patient", err)
	}

	doc := *p
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return 0, domain.NewStoreError("insert patient", err)
	}
	return id, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, domain.NewStoreError("list patients", err)
	}
	defer cur.Close(ctx)

	patients := make([]domain.Patient, 0)
	if err := cur.All(ctx, &patients); err != nil {
		return nil, domain.NewStoreError("list patients", err)
	}
	return patients, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Patient
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, domain.NewStoreError("find patient", err)
	}
	return &p, nil
}

// UpdateStatus sets only the status field.
func (r *PatientRepository) UpdateStatus(ctx context.Context, id int64, status domain.PatientStatus) (int64, error) {
	return r.set(ctx, "update patient status", id, bson.M{"status": string(status)})
}

func (r *PatientRepository) Update(ctx context.Context, p *domain.Patient) (int64, error) {
	return r.set(ctx, "update patient", p.ID, bson.M{
		"name":       p.Name,
		"sex":        p.Sex,
		"birth_date": p.BirthDate,
		"notes":      p.Notes,
		"status":     string(p.Status),
	})
}

func (r *PatientRepository) set(ctx context.Context, op string, id int64, fields bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, domain.NewStoreError(op, err)
	}
	return res.MatchedCount, nil
}
