package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"ideanest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database
var UsersCollection *mongo.Collection

// extractDBName parses the database name from the URI, defaulting to "ideanest"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "ideanest"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "ideanest"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	MongoDatabase = client.Database(extractDBName(uri))
	UsersCollection = MongoDatabase.Collection("users")
	return nil
}

// SaveUserProfile stores the profile document created at signup.
func SaveUserProfile(ctx context.Context, profile models.UserProfile) error {
	if UsersCollection == nil {
		return fmt.Errorf("mongo not connected")
	}
	_, err := UsersCollection.InsertOne(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to save user profile: %w", err)
	}
	return nil
}

// GetUserProfile retrieves a profile by email.
func GetUserProfile(ctx context.Context, email string) (*models.UserProfile, error) {
	if UsersCollection == nil {
		return nil, fmt.Errorf("mongo not connected")
	}
	var profile models.UserProfile
	err := UsersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no profile found for user: %s", email)
		}
		return nil, err
	}
	return &profile, nil
}
