package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// AuditRepository persists patient lifecycle events to the patient_events
// collection.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionPatientEvents)}
}

func (r *AuditRepository) Insert(ctx context.Context, e *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, bson.M{
		"_id":        e.ID,
		"patient_id": e.PatientID,
		"action":     string(e.Action),
		"status":     string(e.Status),
		"actor_id":   e.ActorID,
		"actor_name": e.ActorName,
		"at":         e.At.UTC(),
	})
	if err != nil {
		return domain.NewStoreError("insert patient event", err)
	}
	return nil
}
