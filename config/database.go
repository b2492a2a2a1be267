package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName string = "employee-onboarding-db"
var PanelUserCollection string = "panel_users"
var EmployeeCollection string = "employees"
var WorkplaceCollection string = "workplaces"
var AadharCollection string = "aadhars"
var PanCollection string = "pans"
var BankDetailCollection string = "bank_details"

func MongoConnect() {

	mongoURI := os.Getenv("MONGOSTRING")

	if mongoURI == "" {
		log.Fatal("MONGOSTRING is not set in env. Set it before starting the server")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB!")
	MongoConn = client
}

// InitDatabase creates the indexes the approval queries depend on.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := GetCollection(PanelUserCollection).Indexes().CreateOne(ctx, userIndex); err != nil {
		log.Printf("Warning: failed to create panel_users email index: %v", err)
	}

	statusIndex := mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}}}
	ownerIndex := mongo.IndexModel{Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "status", Value: 1}}}

	if _, err := GetCollection(EmployeeCollection).Indexes().CreateOne(ctx, statusIndex); err != nil {
		log.Printf("Warning: failed to create employees status index: %v", err)
	}
	for _, name := range []string{AadharCollection, PanCollection, BankDetailCollection} {
		if _, err := GetCollection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{statusIndex, ownerIndex}); err != nil {
			log.Printf("Warning: failed to create %s indexes: %v", name, err)
		}
	}

	log.Println("Database indexes ready")
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB client is not initialized. Call MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnect from MongoDB")
	}
}
