package store

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homebuddy/config"
	"homebuddy/models"
)

type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MongoContactStore struct {
	collection *mongo.Collection
}

func NewMongoContactStore() *MongoContactStore {
	collectionName := os.Getenv("MONGODB_COLLECTION_CONTACTS")
	if collectionName == "" {
		collectionName = "contacts"
	}
	return &MongoContactStore{
		collection: config.GetCollection(collectionName),
	}
}

func (s *MongoContactStore) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = time.Now()
	_, err := s.collection.InsertOne(ctx, contact)
	return err
}

func (s *MongoContactStore) List(ctx context.Context) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *MongoContactStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *MongoContactStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var contact models.Contact
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *MongoContactStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
