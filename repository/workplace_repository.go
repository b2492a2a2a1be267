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

type WorkplaceRepository interface {
	CreateWorkplace(ctx context.Context, workplace *models.Workplace) (*mongo.InsertOneResult, error)
	GetAllWorkplaces(ctx context.Context) ([]models.Workplace, error)
	GetWorkplaceByID(ctx context.Context, id primitive.ObjectID) (*models.Workplace, error)
	UpdateWorkplace(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteWorkplace(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	FindWorkplaceByName(ctx context.Context, name string) (*models.Workplace, error)
}

type workplaceRepository struct {
	collection *mongo.Collection
}

func NewWorkplaceRepository() WorkplaceRepository {
	return &workplaceRepository{
		collection: config.GetCollection(config.WorkplaceCollection),
	}
}

func (r *workplaceRepository) CreateWorkplace(ctx context.Context, workplace *models.Workplace) (*mongo.InsertOneResult, error) {
	workplace.ID = primitive.NewObjectID()
	workplace.CreatedAt = time.Now()
	workplace.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, workplace)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("workplace name already exists")
		}
		return nil, fmt.Errorf("failed to create workplace: %w", err)
	}
	return result, nil
}

func (r *workplaceRepository) GetAllWorkplaces(ctx context.Context) ([]models.Workplace, error) {
	var workplaces []models.Workplace
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find workplaces: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workplaces); err != nil {
		return nil, fmt.Errorf("failed to decode workplaces: %w", err)
	}
	return workplaces, nil
}

func (r *workplaceRepository) GetWorkplaceByID(ctx context.Context, id primitive.ObjectID) (*models.Workplace, error) {
	var workplace models.Workplace
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&workplace)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workplace by ID: %w", err)
	}
	return &workplace, nil
}

func (r *workplaceRepository) UpdateWorkplace(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update workplace: %w", err)
	}
	return result, nil
}

func (r *workplaceRepository) DeleteWorkplace(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	filter := bson.M{"_id": id}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to delete workplace: %w", err)
	}
	return result, nil
}

func (r *workplaceRepository) FindWorkplaceByName(ctx context.Context, name string) (*models.Workplace, error) {
	var workplace models.Workplace
	filter := bson.M{"name": name}
	err := r.collection.FindOne(ctx, filter).Decode(&workplace)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workplace by name: %w", err)
	}
	return &workplace, nil
}
