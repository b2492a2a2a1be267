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

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	FindByIDAndStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Employee, error)
	FindAllByStatus(ctx context.Context, status string) ([]models.Employee, error)
	TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to, reply string) (*models.Employee, error)
	UpdatePendingFields(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*models.Employee, error)
	UpdateWorkStatus(ctx context.Context, id primitive.ObjectID, workStatus string) (*models.Employee, error)
	Delete(ctx context.Context, id primitive.ObjectID, status string) (*mongo.DeleteResult, error)
}

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository() EmployeeRepository {
	return &employeeRepository{
		collection: config.GetCollection(config.EmployeeCollection),
	}
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return result, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) FindByIDAndStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "status": status}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by ID and status: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) FindAllByStatus(ctx context.Context, status string) ([]models.Employee, error) {
	var employees []models.Employee
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees by status: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	if len(employees) == 0 {
		return []models.Employee{}, nil
	}
	return employees, nil
}

// TransitionStatus moves an employee from one lifecycle status to another.
// The `from` status is part of the match filter, so a stale transition (for
// example a second approve on an already-approved record) does not match and
// yields ErrStatusConflict instead of silently re-applying.
func (r *employeeRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to, reply string) (*models.Employee, error) {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{
		"$set": bson.M{
			"status":     to,
			"reply":      reply,
			"updated_at": time.Now(),
		},
	}
	if to == models.StatusApproved {
		update["$set"].(bson.M)["workstatus"] = models.WorkStatusActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var employee models.Employee
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&employee)
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
		return nil, fmt.Errorf("failed to transition employee status: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) UpdatePendingFields(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*models.Employee, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id, "status": models.StatusPending}
	update := bson.M{"$set": updateData}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var employee models.Employee
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&employee)
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
		return nil, fmt.Errorf("failed to update pending employee: %w", err)
	}
	return &employee, nil
}

// UpdateWorkStatus toggles the Active/Inactive flag. It only applies to
// approved employees; the approval status itself is untouched.
func (r *employeeRepository) UpdateWorkStatus(ctx context.Context, id primitive.ObjectID, workStatus string) (*models.Employee, error) {
	filter := bson.M{"_id": id, "status": models.StatusApproved}
	update := bson.M{
		"$set": bson.M{
			"workstatus": workStatus,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var employee models.Employee
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&employee)
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
		return nil, fmt.Errorf("failed to update employee work status: %w", err)
	}
	return &employee, nil
}

// Delete removes the employee only when it sits in the addressed status
// collection; the caller names the scope explicitly.
func (r *employeeRepository) Delete(ctx context.Context, id primitive.ObjectID, status string) (*mongo.DeleteResult, error) {
	filter := bson.M{"_id": id, "status": status}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to delete employee: %w", err)
	}
	return result, nil
}
