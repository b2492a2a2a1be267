package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Employee-Onboarding-System/config"
	"Employee-Onboarding-System/models"
)

// DocumentRepository covers the three structurally parallel onboarding
// documents (Aadhar, PAN, bank detail). The variants only differ in their
// identifying fields, so one generic implementation per collection serves
// all of them. Handlers fill IDs and timestamps before Create, the same way
// the status transition endpoints address records by ObjectID afterwards.
type DocumentRepository[T any] interface {
	Create(ctx context.Context, document *T) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	FindByIDAndStatus(ctx context.Context, id primitive.ObjectID, status string) (*T, error)
	FindByOwnerAndStatus(ctx context.Context, employeeID primitive.ObjectID, status string) (*T, error)
	FindAllByStatus(ctx context.Context, status string) ([]T, error)
	TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to, reply string) (*T, error)
	UpdatePendingFields(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*T, error)
	Delete(ctx context.Context, id primitive.ObjectID, status string) (*mongo.DeleteResult, error)
}

type documentRepository[T any] struct {
	collection *mongo.Collection
	kind       string
}

// NewDocumentRepository builds a repository over the named collection. kind
// is only used in error messages ("aadhar", "pan", "bank detail").
func NewDocumentRepository[T any](collectionName, kind string) DocumentRepository[T] {
	return &documentRepository[T]{
		collection: config.GetCollection(collectionName),
		kind:       kind,
	}
}

func (r *documentRepository[T]) Create(ctx context.Context, document *T) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	return result, nil
}

func (r *documentRepository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var document T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find %s by ID: %w", r.kind, err)
	}
	return &document, nil
}

func (r *documentRepository[T]) FindByIDAndStatus(ctx context.Context, id primitive.ObjectID, status string) (*T, error) {
	var document T
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "status": status}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find %s by ID and status: %w", r.kind, err)
	}
	return &document, nil
}

// FindByOwnerAndStatus looks up a document through its owning employee, which
// is how detail pages fetch a record before it has been approved.
func (r *documentRepository[T]) FindByOwnerAndStatus(ctx context.Context, employeeID primitive.ObjectID, status string) (*T, error) {
	var document T
	filter := bson.M{"employee_id": employeeID, "status": status}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.collection.FindOne(ctx, filter, opts).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find %s by employee ID: %w", r.kind, err)
	}
	return &document, nil
}

func (r *documentRepository[T]) FindAllByStatus(ctx context.Context, status string) ([]T, error) {
	var documents []T
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s records by status: %w", r.kind, err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("failed to decode %s records: %w", r.kind, err)
	}

	if len(documents) == 0 {
		return []T{}, nil
	}
	return documents, nil
}

// TransitionStatus carries the same status precondition as the employee
// repository: the record must still be in `from`, otherwise the update
// matches nothing and the caller gets ErrStatusConflict.
func (r *documentRepository[T]) TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to, reply string) (*T, error) {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{
		"$set": bson.M{
			"status":     to,
			"reply":      reply,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var document T
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			existing, findErr := r.FindByID(ctx, id)
			if findErr != nil {
				return nil, findErr
			}
			if existing == nil {
				return nil, ErrNotFound
			}
			return nil, ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to transition %s status: %w", r.kind, err)
	}
	return &document, nil
}

func (r *documentRepository[T]) UpdatePendingFields(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*T, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id, "status": models.StatusPending}
	update := bson.M{"$set": updateData}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var document T
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			existing, findErr := r.FindByID(ctx, id)
			if findErr != nil {
				return nil, findErr
			}
			if existing == nil {
				return nil, ErrNotFound
			}
			return nil, ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to update pending %s: %w", r.kind, err)
	}
	return &document, nil
}

func (r *documentRepository[T]) Delete(ctx context.Context, id primitive.ObjectID, status string) (*mongo.DeleteResult, error) {
	filter := bson.M{"_id": id, "status": status}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", r.kind, err)
	}
	return result, nil
}
